package common

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// AdminCommandSuffix marks commands reserved to administrators.
const AdminCommandSuffix = "-admin"

// AdminPermissions restricts a command to guild administrators by default.
func AdminPermissions() *int64 {
	perm := int64(discordgo.PermissionAdministrator)
	return &perm
}

// GuildOnly disables a command in direct messages.
func GuildOnly() *bool {
	allowed := false
	return &allowed
}

// IsAdminCommand reports whether a command name has the admin suffix.
func IsAdminCommand(name string) bool {
	return strings.HasSuffix(name, AdminCommandSuffix)
}
