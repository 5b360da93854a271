package risk

import (
	"fmt"
	"math"
)

// 特征列名，训练表与推理装配共用
const (
	FeatureAge                 = "age"
	FeatureIrregularPeriods    = "irregular_periods"
	FeatureWeightGain          = "weight_gain"
	FeatureAcne                = "acne"
	FeatureHairGrowth          = "hair_growth"
	FeatureHemoglobin          = "hemoglobin"
	FeatureFatigue             = "fatigue"
	FeatureDiet                = "diet"
	FeatureHeavyFlow           = "heavy_flow"
	FeatureBloodPressure       = "bp"
	FeatureBloodSugar          = "sugar"
	FeaturePregnancyWeightGain = "pregnancy_weight_gain"
	FeatureWeightChange        = "weight_change"
	FeatureHairLoss            = "hair_loss"
	FeatureBMI                 = "bmi"
	FeatureExercise            = "exercise"
	FeatureFamilyHistory       = "family_history"
	FeatureWeight              = "weight"
)

// ExerciseGoalMinutes 每日运动达标分钟数
const ExerciseGoalMinutes = 30

// YesNo 是/否类回答
type YesNo string

const (
	No  YesNo = "No"
	Yes YesNo = "Yes"
)

var yesNoFeature = map[YesNo]float64{No: 0, Yes: 1}

// Valid 是否为合法取值
func (v YesNo) Valid() bool {
	_, ok := yesNoFeature[v]
	return ok
}

// DietQuality 饮食质量
type DietQuality string

const (
	DietPoor DietQuality = "Poor"
	DietGood DietQuality = "Good"
)

var dietFeature = map[DietQuality]float64{DietPoor: 0, DietGood: 1}

// Valid 是否为合法取值
func (v DietQuality) Valid() bool {
	_, ok := dietFeature[v]
	return ok
}

// ExerciseType 运动类型，仅用于反馈文案
type ExerciseType string

const (
	ExerciseNone     ExerciseType = "None"
	ExerciseCardio   ExerciseType = "Cardio"
	ExerciseStrength ExerciseType = "Strength"
	ExerciseYoga     ExerciseType = "Yoga"
	ExerciseMixed    ExerciseType = "Mixed"
)

// ExerciseTypes 可选运动类型（表单顺序）
var ExerciseTypes = []ExerciseType{ExerciseNone, ExerciseCardio, ExerciseStrength, ExerciseYoga, ExerciseMixed}

// Valid 是否为合法取值
func (v ExerciseType) Valid() bool {
	for _, t := range ExerciseTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Range 数值字段的闭区间
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains 判断值是否在区间内
func (r Range) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= r.Min && v <= r.Max
}

// 数值字段的合法区间
var (
	AgeRange            = Range{15, 60}
	HemoglobinRange     = Range{6.0, 15.0}
	FatigueRange        = Range{0, 10}
	BloodPressureRange  = Range{90, 180}
	BloodSugarRange     = Range{70, 200}
	BMIRange            = Range{15, 40}
	WorkoutMinutesRange = Range{0, 180}
	WeightRange         = Range{40, 120}
)

// Input 一次分析的原始表单回答
type Input struct {
	Age                 float64      `json:"age" binding:"min=15,max=60" example:"25"`
	IrregularPeriods    YesNo        `json:"irregular_periods" binding:"required,oneof=Yes No" example:"No"`
	WeightGain          YesNo        `json:"weight_gain" binding:"required,oneof=Yes No" example:"No"`
	Acne                YesNo        `json:"acne" binding:"required,oneof=Yes No" example:"No"`
	HairGrowth          YesNo        `json:"hair_growth" binding:"required,oneof=Yes No" example:"No"`
	Hemoglobin          float64      `json:"hemoglobin" binding:"min=6,max=15" example:"10"`
	Fatigue             float64      `json:"fatigue" binding:"min=0,max=10" example:"5"`
	DietQuality         DietQuality  `json:"diet_quality" binding:"required,oneof=Poor Good" example:"Good"`
	HeavyFlow           YesNo        `json:"heavy_flow" binding:"required,oneof=Yes No" example:"No"`
	BloodPressure       float64      `json:"blood_pressure" binding:"min=90,max=180" example:"120"`
	BloodSugar          float64      `json:"blood_sugar" binding:"min=70,max=200" example:"90"`
	PregnancyWeightGain YesNo        `json:"pregnancy_weight_gain" binding:"required,oneof=Yes No" example:"No"`
	WeightChange        YesNo        `json:"weight_change" binding:"required,oneof=Yes No" example:"No"`
	HairLoss            YesNo        `json:"hair_loss" binding:"required,oneof=Yes No" example:"No"`
	BMI                 float64      `json:"bmi" binding:"min=15,max=40" example:"25"`
	WorkoutMinutes      int          `json:"workout_minutes" binding:"min=0,max=180" example:"30"`
	ExerciseType        ExerciseType `json:"exercise_type" binding:"required,oneof=None Cardio Strength Yoga Mixed" example:"Cardio"`
	FamilyHistory       YesNo        `json:"family_history" binding:"required,oneof=Yes No" example:"No"`
	WeightKg            float64      `json:"weight_kg" binding:"min=40,max=120" example:"65"`
}

// ValidationError 输入边界校验失败
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("字段 %s 无效: %s", e.Field, e.Reason)
}

// Validate 校验数值区间与枚举取值，返回第一个错误
func (in Input) Validate() error {
	numeric := []struct {
		field string
		value float64
		r     Range
	}{
		{"age", in.Age, AgeRange},
		{"hemoglobin", in.Hemoglobin, HemoglobinRange},
		{"fatigue", in.Fatigue, FatigueRange},
		{"blood_pressure", in.BloodPressure, BloodPressureRange},
		{"blood_sugar", in.BloodSugar, BloodSugarRange},
		{"bmi", in.BMI, BMIRange},
		{"workout_minutes", float64(in.WorkoutMinutes), WorkoutMinutesRange},
		{"weight_kg", in.WeightKg, WeightRange},
	}
	for _, f := range numeric {
		if !f.r.Contains(f.value) {
			return &ValidationError{Field: f.field, Reason: fmt.Sprintf("%v 不在 [%v, %v] 范围内", f.value, f.r.Min, f.r.Max)}
		}
	}

	answers := []struct {
		field string
		value YesNo
	}{
		{"irregular_periods", in.IrregularPeriods},
		{"weight_gain", in.WeightGain},
		{"acne", in.Acne},
		{"hair_growth", in.HairGrowth},
		{"heavy_flow", in.HeavyFlow},
		{"pregnancy_weight_gain", in.PregnancyWeightGain},
		{"weight_change", in.WeightChange},
		{"hair_loss", in.HairLoss},
		{"family_history", in.FamilyHistory},
	}
	for _, a := range answers {
		if !a.value.Valid() {
			return &ValidationError{Field: a.field, Reason: fmt.Sprintf("%q 应为 Yes 或 No", a.value)}
		}
	}
	if !in.DietQuality.Valid() {
		return &ValidationError{Field: "diet_quality", Reason: fmt.Sprintf("%q 应为 Poor 或 Good", in.DietQuality)}
	}
	if !in.ExerciseType.Valid() {
		return &ValidationError{Field: "exercise_type", Reason: fmt.Sprintf("未知运动类型 %q", in.ExerciseType)}
	}
	return nil
}

// features 把回答映射为按列名索引的数值特征，调用前须已通过 Validate
func (in Input) features() map[string]float64 {
	exercise := 0.0
	if in.WorkoutMinutes >= ExerciseGoalMinutes {
		exercise = 1
	}
	return map[string]float64{
		FeatureAge:                 in.Age,
		FeatureIrregularPeriods:    yesNoFeature[in.IrregularPeriods],
		FeatureWeightGain:          yesNoFeature[in.WeightGain],
		FeatureAcne:                yesNoFeature[in.Acne],
		FeatureHairGrowth:          yesNoFeature[in.HairGrowth],
		FeatureHemoglobin:          in.Hemoglobin,
		FeatureFatigue:             in.Fatigue,
		FeatureDiet:                dietFeature[in.DietQuality],
		FeatureHeavyFlow:           yesNoFeature[in.HeavyFlow],
		FeatureBloodPressure:       in.BloodPressure,
		FeatureBloodSugar:          in.BloodSugar,
		FeaturePregnancyWeightGain: yesNoFeature[in.PregnancyWeightGain],
		FeatureWeightChange:        yesNoFeature[in.WeightChange],
		FeatureHairLoss:            yesNoFeature[in.HairLoss],
		FeatureBMI:                 in.BMI,
		FeatureExercise:            exercise,
		FeatureFamilyHistory:       yesNoFeature[in.FamilyHistory],
		FeatureWeight:              in.WeightKg,
	}
}

// Snapshot 本次查询各类别的有序特征向量
type Snapshot map[Category][]float64

// Normalize 校验输入并按各类别训练表的列顺序装配特征向量
func Normalize(in Input, categories []Category) (Snapshot, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	named := in.features()
	snap := make(Snapshot, len(categories))
	for _, c := range categories {
		table, err := c.Table()
		if err != nil {
			return nil, err
		}
		vec, err := Assemble(table.Columns, named)
		if err != nil {
			return nil, fmt.Errorf("类别 %s: %w", c, err)
		}
		snap[c] = vec
	}
	return snap, nil
}

// Assemble 按 columns 顺序从具名特征中取值，缺列即报错
func Assemble(columns []string, named map[string]float64) ([]float64, error) {
	vec := make([]float64, len(columns))
	for i, col := range columns {
		v, ok := named[col]
		if !ok {
			return nil, fmt.Errorf("%w: 缺少特征列 %q", ErrArity, col)
		}
		vec[i] = v
	}
	return vec, nil
}
