package domain

type ThemeGroup struct {
	Name   string
	Fields []Field
}

type CategoryGroup struct {
	Name   string
	Themes []ThemeGroup
}

// GroupedSchema organizes fields by category then theme. Category and theme
// order follows first occurrence in the source field list, which keeps the
// rendered layout stable across reloads.
type GroupedSchema struct {
	Categories []CategoryGroup
}

// GroupFields filters the flat field list to the given workflow method and
// groups the survivors by category and theme.
func GroupFields(fields []Field, method Method) GroupedSchema {
	var grouped GroupedSchema
	categoryIndex := make(map[string]int)
	themeIndex := make(map[string]map[string]int)

	for _, f := range fields {
		if f.Method != method {
			continue
		}

		ci, ok := categoryIndex[f.Category]
		if !ok {
			ci = len(grouped.Categories)
			categoryIndex[f.Category] = ci
			themeIndex[f.Category] = make(map[string]int)
			grouped.Categories = append(grouped.Categories, CategoryGroup{Name: f.Category})
		}

		ti, ok := themeIndex[f.Category][f.Theme]
		if !ok {
			ti = len(grouped.Categories[ci].Themes)
			themeIndex[f.Category][f.Theme] = ti
			grouped.Categories[ci].Themes = append(grouped.Categories[ci].Themes, ThemeGroup{Name: f.Theme})
		}

		grouped.Categories[ci].Themes[ti].Fields = append(grouped.Categories[ci].Themes[ti].Fields, f)
	}

	return grouped
}
