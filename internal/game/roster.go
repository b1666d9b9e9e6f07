package game

// Roster is the purchasable catalog for one team type.
type Roster struct {
	TeamType   TeamType             `json:"team_type"`
	Positions  map[string]Archetype `json:"positions"`
	RerollCost int                  `json:"reroll_cost"`
	MaxRerolls int                  `json:"max_rerolls"`
}

// DefaultRosters returns the two shipped rosters. A config file may replace
// these wholesale; the stat lines here are the catalog of record.
func DefaultRosters() map[TeamType]Roster {
	return map[TeamType]Roster{
		TeamCityWatch: {
			TeamType:   TeamCityWatch,
			RerollCost: 50000,
			MaxRerolls: 8,
			Positions: map[string]Archetype{
				"constable": {
					Role: "Constable", Cost: 50000, MaxQuantity: 16,
					MA: 6, ST: 3, AG: 3, PA: 4, AV: 9,
				},
				"clerk_runner": {
					Role: "Clerk-Runner", Cost: 80000, MaxQuantity: 2,
					MA: 6, ST: 3, AG: 3, PA: 2, AV: 9,
					Skills: []SkillType{SkillPigeonPost, SkillChainOfCustody},
				},
				"fleet_recruit": {
					Role: "Fleet Recruit", Cost: 65000, MaxQuantity: 4,
					MA: 8, ST: 2, AG: 3, PA: 5, AV: 8,
					Skills: []SkillType{SkillQuickGrab, SkillSidestep},
				},
				"watch_sergeant": {
					Role: "Watch Sergeant", Cost: 85000, MaxQuantity: 4,
					MA: 7, ST: 3, AG: 3, PA: 4, AV: 9,
					Skills: []SkillType{SkillDrillHardened},
				},
			},
		},
		TeamUnseenUniversity: {
			TeamType:   TeamUnseenUniversity,
			RerollCost: 60000,
			MaxRerolls: 8,
			Positions: map[string]Archetype{
				"apprentice_wizard": {
					Role: "Apprentice Wizard", Cost: 45000, MaxQuantity: 16,
					MA: 6, ST: 2, AG: 3, PA: 4, AV: 8,
					Skills: []SkillType{SkillBlink, SkillSmallAndSneaky, SkillPortable, SkillPointyHatPadding},
				},
				"senior_wizard": {
					Role: "Senior Wizard", Cost: 90000, MaxQuantity: 4,
					MA: 4, ST: 4, AG: 4, PA: 5, AV: 10,
					Skills: []SkillType{SkillRerollTheThesis, SkillGrapplingCantrip},
				},
				"animated_gargoyle": {
					Role: "Animated Gargoyle", Cost: 115000, MaxQuantity: 2,
					MA: 4, ST: 5, AG: 5, PA: 5, AV: 10,
					Skills: []SkillType{
						SkillBoundSpirit, SkillStoneThick, SkillPigeonProof,
						SkillMindlessMasonry, SkillWeathered, SkillLobTheLackey,
						SkillOccasionalBiteMark,
					},
				},
			},
		},
	}
}
