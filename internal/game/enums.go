package game

// PlayerState describes a player's physical condition on the pitch.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type PlayerState string

const (
	StateStanding   PlayerState = "standing"
	StateProne      PlayerState = "prone"
	StateStunned    PlayerState = "stunned"
	StateKnockedOut PlayerState = "knocked_out"
	StateCasualty   PlayerState = "casualty"
)

// ActionType identifies the action a player wants to perform.
type ActionType string

const (
	ActionMove      ActionType = "move"
	ActionStandUp   ActionType = "stand_up"
	ActionScuffle   ActionType = "scuffle"    // block an adjacent opponent
	ActionCharge    ActionType = "charge"     // move then scuffle, once per turn
	ActionHurl      ActionType = "hurl"       // throw the ball, once per turn
	ActionQuickPass ActionType = "quick_pass" // hand-off to an adjacent teammate, once per turn
	ActionBoot      ActionType = "boot"       // foul a prone opponent, once per turn
)

// TeamType selects one of the shipped rosters.
type TeamType string

const (
	TeamCityWatch        TeamType = "city_watch"
	TeamUnseenUniversity TeamType = "unseen_university"
)

// BlockResult is a single face of a block die.
type BlockResult string

const (
	AttackerDown     BlockResult = "attacker_down"
	BothDown         BlockResult = "both_down"
	Push             BlockResult = "push"
	DefenderStumbles BlockResult = "defender_stumbles"
	DefenderDown     BlockResult = "defender_down"
)

// PassResult is the accuracy band of a resolved hurl.
type PassResult string

const (
	PassAccurate         PassResult = "accurate"
	PassInaccurate       PassResult = "inaccurate"
	PassWildlyInaccurate PassResult = "wildly_inaccurate"
	PassFumble           PassResult = "fumble"
)

// InjuryResult classifies a broken-armor injury roll.
type InjuryResult string

const (
	InjuryStunned    InjuryResult = "stunned"
	InjuryKnockedOut InjuryResult = "knocked_out"
	InjuryCasualty   InjuryResult = "casualty"
)

// GamePhase tracks the match lifecycle. Transitions are monotonic except
// Intermission -> ActivePlay, which begins the second half.
type GamePhase string

const (
	PhaseDeployment      GamePhase = "deployment"
	PhaseOpeningScramble GamePhase = "opening_scramble"
	PhaseActivePlay      GamePhase = "active_play"
	PhaseIntermission    GamePhase = "intermission"
	PhaseConcluded       GamePhase = "concluded"
)

// RollType labels a dice roll so downstream collaborators (event logs,
// statistics) can classify it without re-deriving context.
type RollType string

const (
	RollPickup   RollType = "pickup"
	RollDodge    RollType = "dodge"
	RollRush     RollType = "rush"
	RollPass     RollType = "pass"
	RollCatch    RollType = "catch"
	RollBlock    RollType = "block"
	RollArmor    RollType = "armor"
	RollInjury   RollType = "injury"
	RollCasualty RollType = "casualty"
	RollScatter  RollType = "scatter"
)

// SkillType names the themed skills carried by roster archetypes. Each maps
// to a single mechanical effect in the engine.
type SkillType string

const (
	// City Watch skills
	SkillDrillHardened  SkillType = "drill_hardened"   // block: ignore knockdown on BothDown/AttackerDown
	SkillPigeonPost     SkillType = "pigeon_post"      // +1 to pass rolls
	SkillChainOfCustody SkillType = "chain_of_custody" // +1 to pickup rolls
	SkillQuickGrab      SkillType = "quick_grab"       // +1 to catch rolls
	SkillSidestep       SkillType = "sidestep_shuffle" // +1 to dodge rolls

	// Unseen University skills
	SkillBlink              SkillType = "blink" // +1 to dodge rolls
	SkillSmallAndSneaky     SkillType = "small_and_sneaky"
	SkillPortable           SkillType = "portable"
	SkillPointyHatPadding   SkillType = "pointy_hat_padding"
	SkillRerollTheThesis    SkillType = "reroll_the_thesis"
	SkillGrapplingCantrip   SkillType = "grappling_cantrip"
	SkillBoundSpirit        SkillType = "bound_spirit"
	SkillStoneThick         SkillType = "stone_thick" // +1 effective strength when blocking
	SkillPigeonProof        SkillType = "pigeon_proof"
	SkillMindlessMasonry    SkillType = "mindless_masonry"
	SkillWeathered          SkillType = "weathered"
	SkillLobTheLackey       SkillType = "lob_the_lackey"
	SkillOccasionalBiteMark SkillType = "occasional_bite_mark"
)
