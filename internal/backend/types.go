package backend

import "time"

// User is a Discord user known to the game.
type User struct {
	ID            string `json:"id"`
	DiscordID     string `json:"discordId"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"globalName,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
}

// CreateUserInput is the payload of POST /users.
type CreateUserInput struct {
	DiscordID     string `json:"discordId"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"globalName,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Email         string `json:"email"`
}

// UpdateUserInput is the payload of PUT /users/discord/:id.
type UpdateUserInput struct {
	Username      string `json:"username,omitempty"`
	Discriminator string `json:"discriminator,omitempty"`
	GlobalName    string `json:"globalName,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
}

// Guild is a Discord server hosting a town.
type Guild struct {
	ID          string `json:"id"`
	DiscordID   string `json:"discordId"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}

// UpsertGuildInput is the payload of POST /guilds.
type UpsertGuildInput struct {
	DiscordID   string `json:"discordId"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}

// Town is the city attached to a guild.
type Town struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FoodStock int    `json:"foodStock"`
	GuildID   string `json:"guildId"`
}

// Character is a player's avatar in a town.
type Character struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	TownID      string `json:"townId"`
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
	IsDead      bool   `json:"isDead"`
	PATotal     int    `json:"paTotal"`
	HungerLevel int    `json:"hungerLevel"`
	HP          int    `json:"hp"`
	PM          int    `json:"pm"`
	User        *User  `json:"user,omitempty"`
}

// CreateCharacterInput is the payload of POST /characters.
type CreateCharacterInput struct {
	UserID string `json:"userId"`
	TownID string `json:"townId"`
	Name   string `json:"name"`
}

// ActionPoints is the answer of GET /action-points/:id.
type ActionPoints struct {
	Points      int       `json:"points"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// EatResult is the answer of POST /characters/:id/eat.
type EatResult struct {
	Character    Character `json:"character"`
	Town         Town      `json:"town"`
	FoodConsumed int       `json:"foodConsumed"`
}

// Capability is a special action a character can perform.
type Capability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CostPA      int    `json:"costPA"`
	Cooldown    int    `json:"cooldown"`
	EmojiTag    string `json:"emojiTag"`
}

// characterCapability is one row of GET /characters/:id/capabilities.
type characterCapability struct {
	CharacterID  string     `json:"characterId"`
	CapabilityID string     `json:"capabilityId"`
	Capability   Capability `json:"capability"`
}

// CapabilityResult is the answer of POST /characters/:id/capabilities/use.
type CapabilityResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	PublicMessage string `json:"publicMessage"`
}

// ResourceType describes a kind of resource.
type ResourceType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateResourceTypeInput is the body of POST /resources/types.
type CreateResourceTypeInput struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Resource is a quantity of a resource type held at a location.
type Resource struct {
	ResourceTypeID int          `json:"resourceTypeId"`
	Quantity       int          `json:"quantity"`
	ResourceType   ResourceType `json:"resourceType"`
}

// Location types accepted by the resources endpoints.
const (
	LocationCity       = "CITY"
	LocationExpedition = "EXPEDITION"
)

// ResourceCost is a resource requirement of a chantier or project.
type ResourceCost struct {
	ID                  string       `json:"id,omitempty"`
	ResourceTypeID      int          `json:"resourceTypeId"`
	QuantityRequired    int          `json:"quantityRequired"`
	QuantityContributed int          `json:"quantityContributed"`
	ResourceType        ResourceType `json:"resourceType"`
}

// Remaining returns how much of the cost is still missing.
func (c ResourceCost) Remaining() int {
	if c.QuantityContributed >= c.QuantityRequired {
		return 0
	}
	return c.QuantityRequired - c.QuantityContributed
}

// Chantier statuses.
const (
	ChantierPlan       = "PLAN"
	ChantierInProgress = "IN_PROGRESS"
	ChantierCompleted  = "COMPLETED"
)

// Chantier is a guild construction site.
type Chantier struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Cost           int            `json:"cost"`
	SpendOnIt      int            `json:"spendOnIt"`
	Status         string         `json:"status"`
	CompletionText string         `json:"completionText,omitempty"`
	CreatedBy      string         `json:"createdBy"`
	ResourceCosts  []ResourceCost `json:"resourceCosts,omitempty"`
}

// RemainingPA returns the action points still needed.
func (c Chantier) RemainingPA() int {
	if c.SpendOnIt >= c.Cost {
		return 0
	}
	return c.Cost - c.SpendOnIt
}

// ChantierResourceInput is one resource requirement sent on chantier creation.
type ChantierResourceInput struct {
	ResourceTypeID int `json:"resourceTypeId"`
	Quantity       int `json:"quantity"`
}

// CreateChantierInput is the payload of POST /chantiers.
type CreateChantierInput struct {
	Name           string                  `json:"name"`
	Cost           int                     `json:"cost"`
	CompletionText string                  `json:"completionText,omitempty"`
	ResourceCosts  []ChantierResourceInput `json:"resourceCosts,omitempty"`
	DiscordGuildID string                  `json:"discordGuildId"`
	CreatedBy      string                  `json:"createdBy"`
}

// InvestResult is the answer of POST /chantiers/:id/invest.
type InvestResult struct {
	PointsInvested  int  `json:"pointsInvested"`
	RemainingPoints int  `json:"remainingPoints"`
	IsCompleted     bool `json:"isCompleted"`
}

// ResourceContribution is a quantity of a resource given to a chantier or project.
type ResourceContribution struct {
	ResourceTypeID int `json:"resourceTypeId"`
	Quantity       int `json:"quantity"`
}

// Project statuses.
const (
	ProjectActive    = "ACTIVE"
	ProjectCompleted = "COMPLETED"
)

// Project is a craft recipe run by a town.
type Project struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	PARequired           int            `json:"paRequired"`
	PAContributed        int            `json:"paContributed"`
	Status               string         `json:"status"`
	TownID               string         `json:"townId"`
	CraftTypes           []string       `json:"craftTypes"`
	OutputResourceTypeID int            `json:"outputResourceTypeId"`
	OutputQuantity       int            `json:"outputQuantity"`
	ResourceCosts        []ResourceCost `json:"resourceCosts,omitempty"`
	OutputResourceType   *ResourceType  `json:"outputResourceType,omitempty"`
	IsBlueprint          bool           `json:"isBlueprint"`
}

// RemainingPA returns the action points still needed.
func (p Project) RemainingPA() int {
	if p.PAContributed >= p.PARequired {
		return 0
	}
	return p.PARequired - p.PAContributed
}

// ProjectCostInput is one resource requirement sent on project creation.
type ProjectCostInput struct {
	ResourceTypeID   int `json:"resourceTypeId"`
	QuantityRequired int `json:"quantityRequired"`
}

// CreateProjectInput is the payload of POST /projects.
type CreateProjectInput struct {
	Name                   string             `json:"name"`
	PARequired             int                `json:"paRequired"`
	TownID                 string             `json:"townId"`
	CraftTypes             []string           `json:"craftTypes"`
	OutputResourceTypeID   int                `json:"outputResourceTypeId,omitempty"`
	OutputQuantity         int                `json:"outputQuantity"`
	ResourceCosts          []ProjectCostInput `json:"resourceCosts,omitempty"`
	PABlueprintRequired    int                `json:"paBlueprintRequired,omitempty"`
	BlueprintResourceCosts []ProjectCostInput `json:"blueprintResourceCosts,omitempty"`
	CreatedBy              string             `json:"createdBy"`
}

// ContributeProjectInput is the payload of the project contribute endpoint.
type ContributeProjectInput struct {
	PAAmount              int                    `json:"paAmount"`
	ResourceContributions []ResourceContribution `json:"resourceContributions"`
}

// Expedition statuses.
const (
	ExpeditionPlanning = "PLANNING"
	ExpeditionLocked   = "LOCKED"
	ExpeditionDeparted = "DEPARTED"
	ExpeditionReturned = "RETURNED"
)

// Expedition is a party travelling away from town.
type Expedition struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Duration         int                `json:"duration"`
	TownID           string             `json:"townId"`
	CreatedBy        string             `json:"createdBy"`
	Status           string             `json:"status"`
	InitialDirection string             `json:"initialDirection,omitempty"`
	ReturnAt         *time.Time         `json:"returnAt,omitempty"`
	Members          []ExpeditionMember `json:"members,omitempty"`
}

// ExpeditionMember links a character to an expedition.
type ExpeditionMember struct {
	ID        string    `json:"id"`
	Character Character `json:"character"`
}

// ExpeditionResourceInput is a resource taken from town stock on departure.
type ExpeditionResourceInput struct {
	ResourceTypeID   int    `json:"resourceTypeId"`
	ResourceTypeName string `json:"resourceTypeName"`
	Quantity         int    `json:"quantity"`
}

// CreateExpeditionInput is the payload of POST /expeditions.
type CreateExpeditionInput struct {
	Name             string                    `json:"name"`
	TownID           string                    `json:"townId"`
	InitialResources []ExpeditionResourceInput `json:"initialResources"`
	Duration         int                       `json:"duration"`
	InitialDirection string                    `json:"initialDirection"`
	CreatedBy        string                    `json:"createdBy"`
	CharacterID      string                    `json:"characterId"`
}

// Season names.
const (
	SeasonSummer = "SUMMER"
	SeasonWinter = "WINTER"
)

// Season is the current game season.
type Season struct {
	Name string `json:"name"`
}
