package risk

// FieldKind 表单字段类型
type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindChoice FieldKind = "choice"
)

// FieldDescriptor 描述一个输入字段，前端据此渲染表单
type FieldDescriptor struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Kind    FieldKind   `json:"kind"`
	Range   *Range      `json:"range,omitempty"`
	Step    float64     `json:"step,omitempty"`
	Options []string    `json:"options,omitempty"`
	Default interface{} `json:"default"`
}

// FormSchema 表单定义及每日打卡项
type FormSchema struct {
	Profile   Profile           `json:"profile"`
	Fields    []FieldDescriptor `json:"fields"`
	Checklist []string          `json:"checklist"`
}

func number(name, label string, r Range, step float64, def interface{}) FieldDescriptor {
	return FieldDescriptor{Name: name, Label: label, Kind: KindNumber, Range: &r, Step: step, Default: def}
}

func yesNo(name, label string) FieldDescriptor {
	return FieldDescriptor{Name: name, Label: label, Kind: KindChoice, Options: []string{string(No), string(Yes)}, Default: string(No)}
}

// Form 返回分析接口的表单定义，默认值即表单初始值
func Form(profile Profile) FormSchema {
	exerciseOptions := make([]string, 0, len(ExerciseTypes))
	for _, t := range ExerciseTypes {
		exerciseOptions = append(exerciseOptions, string(t))
	}
	return FormSchema{
		Profile: profile,
		Fields: []FieldDescriptor{
			number("age", "Age", AgeRange, 1, 25),
			yesNo("irregular_periods", "Irregular Periods?"),
			yesNo("weight_gain", "Weight Gain?"),
			yesNo("acne", "Acne Problem?"),
			yesNo("hair_growth", "Excess Hair Growth?"),
			number("hemoglobin", "Hemoglobin Level (g/dL)", HemoglobinRange, 0.1, 10.0),
			number("fatigue", "Fatigue Level (0-10)", FatigueRange, 1, 5),
			{
				Name:    "diet_quality",
				Label:   "Diet Quality",
				Kind:    KindChoice,
				Options: []string{string(DietPoor), string(DietGood)},
				Default: string(DietPoor),
			},
			yesNo("heavy_flow", "Heavy Menstrual Flow?"),
			number("blood_pressure", "Blood Pressure (mmHg)", BloodPressureRange, 1, 120),
			number("blood_sugar", "Blood Sugar (mg/dL)", BloodSugarRange, 1, 90),
			yesNo("pregnancy_weight_gain", "Pregnancy Weight Gain?"),
			yesNo("weight_change", "Recent Weight Change?"),
			yesNo("hair_loss", "Hair Loss?"),
			number("bmi", "BMI", BMIRange, 1, 25),
			number("workout_minutes", "Workout Duration (minutes)", WorkoutMinutesRange, 1, 30),
			{
				Name:    "exercise_type",
				Label:   "Type of Exercise",
				Kind:    KindChoice,
				Options: exerciseOptions,
				Default: string(ExerciseNone),
			},
			yesNo("family_history", "Family History of Cancer?"),
			number("weight_kg", "Weight (kg)", WeightRange, 1, 65),
		},
		Checklist: DailyChecklist,
	}
}
