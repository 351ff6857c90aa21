package common

// Messages shown to players.
const (
	MsgGuildOnly        = "Cette commande ne peut être utilisée que dans une guilde"
	MsgNoCharacter      = "Vous devez d'abord créer un personnage avec /profil."
	MsgCharacterDead    = "Votre personnage est mort et ne peut plus agir."
	MsgDraftExpired     = "Cette session a expiré. Veuillez recommencer."
	MsgDraftForbidden   = "Cette session ne vous appartient pas."
	MsgDraftInvalidStep = "Cette étape n'est plus disponible."
	MsgInvalidNumber    = "Veuillez entrer un nombre entier valide."
	MsgPositiveNumber   = "Veuillez entrer un nombre supérieur à 0."
	MsgNotImplemented   = "Fonctionnalité non encore implémentée."
	MsgNothingSelected  = "Aucune sélection reçue."
	MsgUnknownResource  = "Type de ressource introuvable."
)

// Emojis shared by several modules.
const (
	EmojiSuccess    = "✅"
	EmojiError      = "❌"
	EmojiWarning    = "⚠️"
	EmojiInfo       = "ℹ️"
	EmojiStats      = "📊"
	EmojiPA         = "⚡"
	EmojiHP         = "❤️"
	EmojiPM         = "💜"
	EmojiProfile    = "📋"
	EmojiFood       = "🍞"
	EmojiChantier   = "🛖"
	EmojiProject    = "🛠️"
	EmojiExpedition = "🧭"
	EmojiDuration   = "⌛"
	EmojiSummer     = "☀️"
	EmojiWinter     = "❄️"
	EmojiGeneric    = "💪"
	EmojiSparkles   = "✨"
	EmojiPackage    = "📦"
)

// Embed colors.
const (
	ColorSuccess = 0x08c404
	ColorError   = 0xE74C3C
	ColorInfo    = 0x3498DB
	ColorWarning = 0xF1C40F
)

var hungerTexts = [...]string{"En bonne santé", "Faim", "Affamé", "Agonie", "Mort"}
var hungerEmojis = [...]string{"😊", "🤤", "😕", "😰", "💀"}
var hungerColors = [...]int{0x00ff00, 0xffff00, 0xffa500, 0xff4500, 0x000000}

// HungerText describes a hunger level, from 0 (fed) to 4 (dead).
func HungerText(level int) string {
	if level < 0 || level >= len(hungerTexts) {
		return "Inconnu"
	}
	return hungerTexts[level]
}

// HungerEmoji returns the emoji of a hunger level.
func HungerEmoji(level int) string {
	if level < 0 || level >= len(hungerEmojis) {
		return "❓"
	}
	return hungerEmojis[level]
}

// HungerColor returns the embed color of a hunger level.
func HungerColor(level int) int {
	if level < 0 || level >= len(hungerColors) {
		return 0x808080
	}
	return hungerColors[level]
}

// ResourceLabel renders a resource type as "<emoji> <name>".
func ResourceLabel(emoji, name string) string {
	if emoji == "" {
		return name
	}
	return emoji + " " + name
}
