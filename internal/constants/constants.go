package constants

// Centralized constants for headers, env keys and routes.
const (
	// Environment variable keys
	EnvAddress      = "SCRAMBLE_ADDRESS"
	EnvDatabasePath = "SCRAMBLE_DB_PATH"
	EnvConfigPath   = "SCRAMBLE_CONFIG_PATH"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteGames          = "/games"
	RouteGameByID       = "/games/:gameID"
	RouteGameJoin       = "/games/:gameID/join"
	RouteGameSetup      = "/games/:gameID/setup"
	RouteGamePlace      = "/games/:gameID/place"
	RouteGameStart      = "/games/:gameID/start"
	RouteGameAction     = "/games/:gameID/action"
	RouteGameEndTurn    = "/games/:gameID/end-turn"
	RouteGameSecondHalf = "/games/:gameID/second-half"
	RouteGameReset      = "/games/:gameID/reset"
	RouteGameEvents     = "/games/:gameID/events"
	RouteGameValid      = "/games/:gameID/valid-actions"
	RouteGamePath       = "/games/:gameID/suggest-path"
	RouteGameBudget     = "/games/:gameID/teams/:teamID/budget"
	RouteGamePositions  = "/games/:gameID/teams/:teamID/positions"
	RouteGameBuyPlayer  = "/games/:gameID/teams/:teamID/buy-player"
	RouteGameBuyReroll  = "/games/:gameID/teams/:teamID/buy-reroll"
	RouteLeaderboard    = "/leaderboard"
	RouteRecentGames    = "/recent-games"
	RouteVersion        = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrGameNotFound           = "Game not found"
	ErrFailedCreateGame       = "Failed to create game"
	ErrFailedUpdateGame       = "Failed to update game"
	ErrFailedFetchGame        = "Failed to fetch game"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchGames       = "Failed to fetch games"
	ErrTeamNameExceeds        = "Team name exceeds 32 characters"
)

// Logging field names
const (
	LogFieldGameID   = "game_id"
	LogFieldTeamID   = "team_id"
	LogFieldPlayerID = "player_id"
	LogFieldAction   = "action"
	LogFieldAddr     = "addr"
)
