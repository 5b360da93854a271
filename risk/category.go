package risk

import "fmt"

// Category 健康风险类别
type Category string

const (
	CategoryReproductive Category = "reproductive"
	CategoryAnemia       Category = "anemia"
	CategoryPregnancy    Category = "pregnancy"
	CategoryHormonal     Category = "hormonal"
	CategoryLifestyle    Category = "lifestyle"
	CategoryCancer       Category = "cancer"
)

// categorySpec 类别的展示名、建议文本与训练表
type categorySpec struct {
	label    string
	advisory string
	table    TrainingTable
}

var categorySpecs = map[Category]categorySpec{
	CategoryReproductive: {
		label:    "Menstrual/Reproductive",
		advisory: "Consult gynecologist; maintain balanced diet & exercise.",
		table:    reproductiveTable,
	},
	CategoryAnemia: {
		label:    "Anemia/Nutrition",
		advisory: "Increase iron-rich foods; consult doctor if symptoms persist.",
		table:    anemiaTable,
	},
	CategoryPregnancy: {
		label:    "Pregnancy/Maternal",
		advisory: "Regular checkups; monitor BP & sugar.",
		table:    pregnancyTable,
	},
	CategoryHormonal: {
		label:    "Hormonal Disorder",
		advisory: "Get hormonal tests; maintain healthy lifestyle.",
		table:    hormonalTable,
	},
	CategoryLifestyle: {
		label:    "Lifestyle Disease",
		advisory: "Exercise regularly; balanced diet.",
		table:    lifestyleTable,
	},
	CategoryCancer: {
		label:    "Cancer",
		advisory: "Consult specialist; regular screening.",
		table:    cancerTable,
	},
}

// Label 返回类别展示名
func (c Category) Label() string {
	if s, ok := categorySpecs[c]; ok {
		return s.label
	}
	return string(c)
}

// Advisory 返回类别的固定建议文本
func (c Category) Advisory() string {
	return categorySpecs[c].advisory
}

// Table 返回类别的训练表
func (c Category) Table() (TrainingTable, error) {
	s, ok := categorySpecs[c]
	if !ok {
		return TrainingTable{}, fmt.Errorf("未知类别: %s", c)
	}
	return s.table, nil
}

// Profile 报告变体，决定参与评估的类别集合
type Profile string

const (
	// ProfileDashboard 完整仪表盘：六个类别
	ProfileDashboard Profile = "dashboard"
	// ProfileAgent 精简助手：四个类别
	ProfileAgent Profile = "agent"
)

var profileCategories = map[Profile][]Category{
	ProfileDashboard: {
		CategoryReproductive,
		CategoryAnemia,
		CategoryPregnancy,
		CategoryHormonal,
		CategoryLifestyle,
		CategoryCancer,
	},
	ProfileAgent: {
		CategoryReproductive,
		CategoryAnemia,
		CategoryPregnancy,
		CategoryLifestyle,
	},
}

// ParseProfile 解析配置中的变体名，空值视为 dashboard
func ParseProfile(s string) (Profile, error) {
	if s == "" {
		return ProfileDashboard, nil
	}
	p := Profile(s)
	if _, ok := profileCategories[p]; !ok {
		return "", fmt.Errorf("未知的报告变体: %q", s)
	}
	return p, nil
}

// Categories 返回变体包含的类别（按报告顺序）
func (p Profile) Categories() []Category {
	cats := profileCategories[p]
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}
