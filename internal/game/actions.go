package game

// Modifier is one named contribution to a dice roll. Modifiers are kept as
// an ordered list rather than a map so results replay deterministically and
// tests can assert on exact contributions.
type Modifier struct {
	Cause string `json:"cause"`
	Value int    `json:"value"`
}

// ModifierTotal sums a modifier list.
func ModifierTotal(mods []Modifier) int {
	total := 0
	for _, m := range mods {
		total += m.Value
	}
	return total
}

// DiceRoll records a single resolved roll: the raw die result, the target
// (nil for rolls without a threshold, e.g. scatter), and the named
// modifiers applied.
type DiceRoll struct {
	Type      RollType   `json:"type"`
	Result    int        `json:"result"`
	Target    *int       `json:"target,omitempty"`
	Success   bool       `json:"success"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

// ActionRequest asks the executor to perform one action. Only the fields
// relevant to the action type need to be set; the executor rejects requests
// missing their required fields before rolling any dice.
type ActionRequest struct {
	ActionType ActionType `json:"action_type"`
	PlayerID   string     `json:"player_id"`

	TargetPosition   *Position  `json:"target_position,omitempty"`
	Path             []Position `json:"path,omitempty"`
	TargetPlayerID   string     `json:"target_player_id,omitempty"`
	TargetReceiverID string     `json:"target_receiver_id,omitempty"`
}

// ActionResult reports everything that happened while executing an action:
// every die rolled in order, state deltas, and whether the action caused a
// turnover. Failed preconditions produce Success=false with no or partial
// dice.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	DiceRolls []DiceRoll `json:"dice_rolls,omitempty"`

	Turnover    bool      `json:"turnover"`
	PlayerMoved string    `json:"player_moved,omitempty"`
	NewPosition *Position `json:"new_position,omitempty"`

	BlockResult         BlockResult `json:"block_result,omitempty"`
	DefenderKnockedDown bool        `json:"defender_knocked_down,omitempty"`
	AttackerKnockedDown bool        `json:"attacker_knocked_down,omitempty"`

	BallPickedUp bool `json:"ball_picked_up,omitempty"`
	BallDropped  bool `json:"ball_dropped,omitempty"`
	BallCaught   bool `json:"ball_caught,omitempty"`

	PassResult PassResult `json:"pass_result,omitempty"`

	ArmorBroken  bool         `json:"armor_broken,omitempty"`
	InjuryResult InjuryResult `json:"injury_result,omitempty"`
	CasualtyRoll int          `json:"casualty_roll,omitempty"`
}

// ValidActions summarizes what the active team may still do, for hosting
// layers that want to present choices without re-deriving the rules.
type ValidActions struct {
	CurrentTeam string `json:"current_team"`
	Phase       string `json:"phase"`

	CanCharge    bool `json:"can_charge"`
	CanHurl      bool `json:"can_hurl"`
	CanQuickPass bool `json:"can_quick_pass"`
	CanBoot      bool `json:"can_boot"`

	MovablePlayers   []string            `json:"movable_players"`
	BlockableTargets map[string][]string `json:"blockable_targets"`

	BallCarrier  string    `json:"ball_carrier,omitempty"`
	BallOnGround bool      `json:"ball_on_ground"`
	BallPosition *Position `json:"ball_position,omitempty"`
}
