package locale

import "golang.org/x/text/language"

// translations maps "<kind>.<enum name>" to the display string. Missing keys
// fall back to English, then to the enum name itself.
var translations = map[language.Tag]map[string]string{
	language.English: {
		"profession.NoProf":     "Unassigned",
		"profession.Likvidator": "Liquidator",
		"profession.Party":      "Party member",

		"resource.BioRaw":      "Raw biomass",
		"resource.ScrapT1":     "Scrap T1",
		"resource.ScrapT2":     "Scrap T2",
		"resource.ScrapT3":     "Scrap T3",
		"resource.ComponentT1": "Components T1",
		"resource.ComponentT2": "Components T2",
		"resource.ComponentT3": "Components T3",
		"resource.ReagentT1":   "Reagents T1",
		"resource.ReagentT2":   "Reagents T2",
		"resource.ReagentT3":   "Reagents T3",
		"resource.Concentrate": "Food concentrate",

		"stationary.BenchToolT1":   "Workbench",
		"stationary.BenchToolT2":   "Lathe and mill",
		"stationary.BenchToolT3":   "Electronics bench",
		"stationary.FormatFurnace": "Forming furnace",
		"stationary.LabT1":         "Lab T1",
		"stationary.LabT2":         "Lab T2",
		"stationary.LabT3":         "Lab T3",
		"stationary.NeuroTerminal": "Neuro terminal",

		"area.Living":     "Living quarters",
		"area.Party":      "Party stores",
		"area.Industrial": "Workshop",
	},
	language.Russian: {
		"tier.NoTier": "без ранга",

		"profession.NoProf":     "Без профессии",
		"profession.Stalker":    "Сталкер",
		"profession.Likvidator": "Ликвидатор",
		"profession.Scientist":  "Учёный",
		"profession.Worker":     "Рабочий",
		"profession.Party":      "Партиец",

		"area.Living":     "Жилой блок",
		"area.Science":    "Научный блок",
		"area.Military":   "Казарма",
		"area.Industrial": "Цех",
		"area.Party":      "Партийный склад",

		"resource.BioRaw":      "Биосырьё",
		"resource.ScrapT1":     "Лом Т1",
		"resource.ScrapT2":     "Лом Т2",
		"resource.ScrapT3":     "Лом Т3",
		"resource.Concrete":    "Бетон",
		"resource.Slime":       "Слизь",
		"resource.ComponentT1": "Компоненты Т1",
		"resource.ComponentT2": "Компоненты Т2",
		"resource.ComponentT3": "Компоненты Т3",
		"resource.ReagentT1":   "Реагенты Т1",
		"resource.ReagentT2":   "Реагенты Т2",
		"resource.ReagentT3":   "Реагенты Т3",
		"resource.Polymer":     "Полимер",
		"resource.Concentrate": "Пищевой концентрат",

		"stationary.None":          "нет",
		"stationary.BenchToolT1":   "Верстак",
		"stationary.BenchToolT2":   "Токарно-фрезерный станок",
		"stationary.BenchToolT3":   "Электронный стенд",
		"stationary.FormatFurnace": "Формовочная печь",
		"stationary.LabT1":         "Лаборатория Т1",
		"stationary.LabT2":         "Лаборатория Т2",
		"stationary.LabT3":         "Лаборатория Т3",
		"stationary.Barrel":        "Бочка",
		"stationary.Rack":          "Стеллаж",
		"stationary.NeuroTerminal": "Нейротерминал",

		"status.Constructing": "строится",
		"status.Ready":        "готово",
	},
}
