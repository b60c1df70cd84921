package balance

import "github.com/kozlovfedor-boop/get-off-the-street/internal/model"

// Default returns the built-in balance table. A yaml file loaded through
// Load replaces it wholesale; there is no merging.
func Default() *Config {
	return &Config{
		Locations: map[model.LocationID]LocationConfig{
			model.LocPark: {
				Name:        "City Park",
				Description: "Public park. Free but risky at night.",
				Actions: map[model.ActionKind]ActionConfig{
					model.ActionSleep: {
						Health:   PresetMedium,
						Hunger:   PresetLow,
						TimeCost: 3,
						Events: []EventConfig{
							{Type: model.EventRobbery, Chance: PresetMedium, Severity: PresetMedium, TimeCondition: "nighttime"},
							{Type: model.EventNightmare, Chance: PresetLow, Severity: PresetLow},
							{Type: model.EventWeather, Chance: PresetMedium, Severity: PresetLow},
						},
					},
					model.ActionPanhandle: {
						Earnings:   PresetLow,
						Hunger:     PresetLow,
						TimeCost:   3,
						XP:         15,
						Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "-low"},
						Gating:     Gating{MinTier: map[model.FactionID]string{model.FactionLocals: "Neutral"}},
						Events: []EventConfig{
							{Type: model.EventFreeResource, Chance: PresetLow, Amount: PresetLow, Faction: model.FactionLocals, Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "+low"}},
							{Type: model.EventFindMoney, Chance: PresetLow, Amount: PresetLow},
						},
					},
					model.ActionFindFood: {
						Food:     PresetLow,
						TimeCost: 2,
						XP:       8,
					},
				},
			},
			model.LocShelter: {
				Name:        "Homeless Shelter",
				Description: "Safe place to sleep and eat. Open 6pm-8am.",
				Actions: map[model.ActionKind]ActionConfig{
					model.ActionSleep: {
						Health:      PresetHigh,
						Hunger:      PresetLow,
						TimeCost:    7,
						TimeWindows: []Window{{Start: 18, End: 8}},
						Reputation:  map[model.FactionID]RepEffect{model.FactionShelter: "+low"},
						Gating:      Gating{MinTier: map[model.FactionID]string{model.FactionShelter: "Neutral"}},
					},
					model.ActionEat: {
						Food:        PresetMedium,
						TimeCost:    0,
						TimeWindows: []Window{{Start: 6, End: 8}, {Start: 18, End: 20}},
						Reputation:  map[model.FactionID]RepEffect{model.FactionShelter: "+low"},
						Gating:      Gating{MinTier: map[model.FactionID]string{model.FactionShelter: "Neutral"}},
					},
				},
			},
			model.LocCamden: {
				Name:        "Camden Town",
				Description: "Industrial area with factories and warehouses.",
				Actions: map[model.ActionKind]ActionConfig{
					model.ActionWork: {
						Earnings:        PresetLow,
						Hunger:          PresetMedium,
						TimeCost:        7,
						XP:              25,
						TimeWindows:     []Window{{Start: 6, End: 22}},
						Reputation:      map[model.FactionID]RepEffect{model.FactionBusiness: "+low"},
						Gating:          Gating{MinTier: map[model.FactionID]string{model.FactionBusiness: "Neutral"}},
						DeferredPayment: true,
						Events: []EventConfig{
							{Type: model.EventWorkAccident, Chance: PresetLow, Severity: PresetLow, Faction: model.FactionBusiness, Reputation: map[model.FactionID]RepEffect{model.FactionBusiness: "-low"}},
							{Type: model.EventBonusTip, Chance: PresetLow, Bonus: PresetLow, Faction: model.FactionBusiness, Reputation: map[model.FactionID]RepEffect{model.FactionBusiness: "+low"}},
						},
					},
					model.ActionPanhandle: {
						Earnings:   PresetLow,
						Hunger:     PresetLow,
						TimeCost:   3,
						XP:         15,
						Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "-low"},
						Gating:     Gating{MinTier: map[model.FactionID]string{model.FactionLocals: "Neutral"}},
						Events: []EventConfig{
							{Type: model.EventFreeResource, Chance: PresetLow, Amount: PresetLow, Faction: model.FactionLocals, Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "+low"}},
							{Type: model.EventFindMoney, Chance: PresetLow, Amount: PresetLow},
						},
					},
					model.ActionSteal: {
						Reward:     PresetMedium,
						Hunger:     PresetLow,
						TimeCost:   1,
						XP:         35,
						Reputation: map[model.FactionID]RepEffect{model.FactionPolice: "-low", model.FactionLocals: "-low"},
						Events: []EventConfig{
							{Type: model.EventPolice, Chance: PresetMedium, Severity: PresetMedium, Faction: model.FactionPolice, Reputation: map[model.FactionID]RepEffect{model.FactionPolice: "-medium"}},
							{Type: model.EventBeatenUp, Chance: PresetHigh, Severity: PresetHigh, Faction: model.FactionLocals, Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "-low"}},
						},
					},
					model.ActionSleep: {
						Health:     PresetLow,
						Hunger:     PresetLow,
						TimeCost:   2,
						Reputation: map[model.FactionID]RepEffect{model.FactionPolice: "-low", model.FactionLocals: "-low"},
						Events: []EventConfig{
							{Type: model.EventRobbery, Chance: PresetLow, Severity: PresetLow, TimeCondition: "nighttime"},
							{Type: model.EventNightmare, Chance: PresetHigh, Severity: PresetMedium},
							{Type: model.EventWeather, Chance: PresetLow, Severity: PresetLow},
						},
					},
					model.ActionBuyFood: {
						Cost:       PresetMedium,
						Food:       PresetMedium,
						TimeCost:   1,
						Reputation: map[model.FactionID]RepEffect{model.FactionBusiness: "+low"},
						Gating:     Gating{Afford: 10, MinTier: map[model.FactionID]string{model.FactionBusiness: "Neutral"}},
					},
				},
			},
			model.LocLondon: {
				Name:        "London City",
				Description: "The wealthy business district. High pay, high risk.",
				Actions: map[model.ActionKind]ActionConfig{
					model.ActionWork: {
						Earnings:        PresetMedium,
						Hunger:          PresetHigh,
						TimeCost:        7,
						XP:              25,
						TimeWindows:     []Window{{Start: 8, End: 18}},
						Reputation:      map[model.FactionID]RepEffect{model.FactionBusiness: "+low"},
						Gating:          Gating{MinTier: map[model.FactionID]string{model.FactionBusiness: "Neutral"}},
						DeferredPayment: true,
						Events: []EventConfig{
							{Type: model.EventWorkAccident, Chance: PresetLow, Severity: PresetMedium, Faction: model.FactionBusiness, Reputation: map[model.FactionID]RepEffect{model.FactionBusiness: "-medium"}},
							{Type: model.EventBonusTip, Chance: PresetMedium, Bonus: PresetMedium, Faction: model.FactionBusiness, Reputation: map[model.FactionID]RepEffect{model.FactionBusiness: "+medium"}},
							{Type: model.EventSickness, Chance: PresetLow, Severity: PresetLow},
						},
					},
					model.ActionPanhandle: {
						Earnings:   PresetMedium,
						Hunger:     PresetLow,
						TimeCost:   3,
						XP:         15,
						Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "+low"},
						Gating:     Gating{MinTier: map[model.FactionID]string{model.FactionLocals: "Neutral"}},
						Events: []EventConfig{
							{Type: model.EventGenerousStranger, Chance: PresetLow, Bonus: PresetHigh, TimeCondition: "daytime", Faction: model.FactionLocals, Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "+medium"}},
							{Type: model.EventFindMoney, Chance: PresetLow, Amount: PresetMedium},
						},
					},
					model.ActionSteal: {
						Reward:     PresetHigh,
						Hunger:     PresetLow,
						TimeCost:   1,
						XP:         35,
						Reputation: map[model.FactionID]RepEffect{model.FactionPolice: "-medium", model.FactionLocals: "-low"},
						Events: []EventConfig{
							{Type: model.EventPolice, Chance: PresetHigh, Severity: PresetHigh, Faction: model.FactionPolice, Reputation: map[model.FactionID]RepEffect{model.FactionPolice: "-high"}},
							{Type: model.EventBeatenUp, Chance: PresetHigh, Severity: PresetHigh, Faction: model.FactionLocals, Reputation: map[model.FactionID]RepEffect{model.FactionLocals: "-medium"}},
						},
					},
					model.ActionBuyFood: {
						Cost:       PresetHigh,
						Food:       PresetHigh,
						TimeCost:   1,
						Reputation: map[model.FactionID]RepEffect{model.FactionBusiness: "+low"},
						Gating:     Gating{Afford: 20, MinTier: map[model.FactionID]string{model.FactionBusiness: "Neutral"}},
					},
				},
			},
		},

		Presets: Presets{
			Action: ActionPresets{
				Earnings: map[PresetLevel]Range{
					PresetHigh:   {Min: 30, Max: 60},
					PresetMedium: {Min: 20, Max: 40},
					PresetLow:    {Min: 5, Max: 20},
				},
				Health: map[PresetLevel]Range{
					PresetHigh:   {Min: 30, Max: 50},
					PresetMedium: {Min: 15, Max: 30},
					PresetLow:    {Min: 6, Max: 10},
				},
				Hunger: map[PresetLevel]Range{
					PresetHigh:   {Min: -25, Max: -10},
					PresetMedium: {Min: -15, Max: -8},
					PresetLow:    {Min: -10, Max: -5},
				},
				Food: map[PresetLevel]Range{
					PresetHigh:   {Min: 40, Max: 60},
					PresetMedium: {Min: 20, Max: 45},
					PresetLow:    {Min: 10, Max: 25},
				},
				Cost: map[PresetLevel]Range{
					PresetHigh:   {Min: 20, Max: 35},
					PresetMedium: {Min: 10, Max: 20},
					PresetLow:    {Min: 5, Max: 15},
				},
				Reward: map[PresetLevel]Range{
					PresetHigh:   {Min: 50, Max: 100},
					PresetMedium: {Min: 30, Max: 60},
					PresetLow:    {Min: 10, Max: 30},
				},
			},
			Event: EventPresets{
				Chance: map[PresetLevel]float64{
					PresetHigh:   0.15,
					PresetMedium: 0.08,
					PresetLow:    0.03,
				},
				MoneyLoss: map[PresetLevel]Range{
					PresetHigh:   {Min: 30, Max: 50},
					PresetMedium: {Min: 20, Max: 40},
					PresetLow:    {Min: 5, Max: 20},
				},
				MoneyGain: map[PresetLevel]Range{
					PresetHigh:   {Min: 50, Max: 100},
					PresetMedium: {Min: 30, Max: 60},
					PresetLow:    {Min: 10, Max: 30},
				},
				HealthLoss: map[PresetLevel]Range{
					PresetHigh:   {Min: 20, Max: 30},
					PresetMedium: {Min: 10, Max: 20},
					PresetLow:    {Min: 5, Max: 10},
				},
				HungerLoss: map[PresetLevel]Range{
					PresetHigh:   {Min: 10, Max: 20},
					PresetMedium: {Min: 5, Max: 10},
					PresetLow:    {Min: 3, Max: 5},
				},
				HungerGain: map[PresetLevel]Range{
					PresetHigh:   {Min: 40, Max: 60},
					PresetMedium: {Min: 20, Max: 45},
					PresetLow:    {Min: 10, Max: 25},
				},
			},
			Reputation: map[PresetLevel]int{
				PresetHigh:   15,
				PresetMedium: 8,
				PresetLow:    3,
			},
		},

		Level: LevelSystem{
			MaxLevel:     10,
			BaseXP:       150,
			XPMultiplier: 1.4,
			Bonuses: LevelBonuses{
				Earnings:         0.05,
				Health:           0.05,
				HungerEfficiency: 0.05,
				Risk:             0.03,
			},
		},

		Reputation: ReputationSystem{
			Factions: []Faction{
				{ID: model.FactionPolice, Name: "Police", Icon: "👮"},
				{ID: model.FactionLocals, Name: "Locals", Icon: "👥"},
				{ID: model.FactionShelter, Name: "Shelter Staff", Icon: "🏠"},
				{ID: model.FactionBusiness, Name: "Business Owners", Icon: "💼"},
			},
			Starting: 50,
			Tiers: []Tier{
				{Name: "Hated", Min: 0, Max: 20, Icon: "💀", Modifiers: TierModifiers{Earnings: 0.50, Risk: 2.00, EventChance: 1.50}},
				{Name: "Disliked", Min: 21, Max: 40, Icon: "👎", Modifiers: TierModifiers{Earnings: 0.75, Risk: 1.50, EventChance: 1.25}},
				{Name: "Neutral", Min: 41, Max: 60, Icon: "😐", Modifiers: TierModifiers{Earnings: 1.00, Risk: 1.00, EventChance: 1.00}},
				{Name: "Respected", Min: 61, Max: 80, Icon: "👍", Modifiers: TierModifiers{Earnings: 1.25, Risk: 0.75, EventChance: 0.75}},
				{Name: "Trusted", Min: 81, Max: 100, Icon: "⭐", Modifiers: TierModifiers{Earnings: 1.50, Risk: 0.50, EventChance: 0.50}},
			},
		},

		Constants: Constants{
			Victory: Victory{Money: 2000, MinHealth: 20},
			Survival: Survival{
				StarvationThreshold: 20,
				StarvationPenalty:   Range{Min: 5, Max: 12},
				HealthMax:           100,
				HungerMax:           100,
			},
			Starting: Starting{
				Location:   model.LocPark,
				Hour:       6,
				Money:      0,
				Health:     100,
				Hunger:     50,
				Level:      1,
				Experience: 0,
			},
		},

		Travel: TravelRules{
			Order:       []model.LocationID{model.LocShelter, model.LocPark, model.LocCamden, model.LocLondon},
			HoursPerHop: 1,
			HungerCost:  Range{Min: 3, Max: 7},
		},
	}
}
