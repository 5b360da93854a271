package risk

import (
	"errors"
	"fmt"
)

// TrainingTable 单个类别的固定训练表
// Columns 的顺序即推理时特征向量的装配顺序
type TrainingTable struct {
	Columns []string
	Rows    [][]float64
	Labels  []float64
}

// Validate 校验训练表结构：行列一致、标签为 0/1 且两类都存在
func (t TrainingTable) Validate() error {
	if len(t.Columns) == 0 {
		return errors.New("训练表没有特征列")
	}
	if len(t.Rows) == 0 {
		return errors.New("训练表没有数据行")
	}
	if len(t.Rows) != len(t.Labels) {
		return fmt.Errorf("训练表行数 %d 与标签数 %d 不一致", len(t.Rows), len(t.Labels))
	}
	var pos, neg int
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: 第 %d 行有 %d 个值，期望 %d", ErrArity, i, len(row), len(t.Columns))
		}
		switch t.Labels[i] {
		case 0:
			neg++
		case 1:
			pos++
		default:
			return fmt.Errorf("第 %d 行标签 %v 不是 0/1", i, t.Labels[i])
		}
	}
	if pos == 0 || neg == 0 {
		return errors.New("训练表只有一个类别，无法拟合")
	}
	return nil
}

// 以下训练数据为内置常量，每个类别 8 行

var reproductiveTable = TrainingTable{
	Columns: []string{FeatureAge, FeatureIrregularPeriods, FeatureWeightGain, FeatureAcne, FeatureHairGrowth},
	Rows: [][]float64{
		{20, 1, 1, 1, 1},
		{25, 0, 0, 0, 0},
		{30, 1, 1, 1, 1},
		{22, 0, 0, 0, 0},
		{28, 1, 1, 1, 1},
		{35, 0, 0, 0, 0},
		{24, 1, 1, 1, 1},
		{32, 1, 1, 1, 1},
	},
	Labels: []float64{1, 0, 1, 0, 1, 0, 1, 1},
}

var anemiaTable = TrainingTable{
	Columns: []string{FeatureAge, FeatureHemoglobin, FeatureFatigue, FeatureDiet, FeatureHeavyFlow},
	Rows: [][]float64{
		{18, 9.2, 8, 0, 1},
		{22, 11.8, 3, 1, 0},
		{25, 12.6, 2, 1, 0},
		{30, 10.1, 6, 0, 1},
		{35, 8.9, 9, 0, 1},
		{40, 9.5, 7, 0, 1},
		{28, 13.1, 1, 1, 0},
		{19, 10.3, 6, 0, 1},
	},
	Labels: []float64{1, 0, 0, 1, 1, 1, 0, 1},
}

var pregnancyTable = TrainingTable{
	Columns: []string{FeatureAge, FeatureBloodPressure, FeatureBloodSugar, FeaturePregnancyWeightGain},
	Rows: [][]float64{
		{22, 130, 90, 1},
		{25, 120, 85, 0},
		{28, 140, 110, 1},
		{30, 135, 105, 0},
		{32, 128, 95, 1},
		{35, 122, 88, 0},
		{27, 138, 115, 1},
		{26, 125, 100, 1},
	},
	Labels: []float64{1, 0, 1, 0, 1, 0, 1, 1},
}

var hormonalTable = TrainingTable{
	Columns: []string{FeatureAge, FeatureFatigue, FeatureWeightChange, FeatureHairLoss},
	Rows: [][]float64{
		{25, 6, 1, 1},
		{30, 3, 0, 0},
		{28, 7, 1, 1},
		{35, 2, 0, 0},
		{40, 8, 1, 1},
		{32, 4, 0, 0},
		{27, 6, 1, 1},
		{29, 5, 1, 1},
	},
	Labels: []float64{1, 0, 1, 0, 1, 0, 1, 1},
}

var lifestyleTable = TrainingTable{
	Columns: []string{FeatureAge, FeatureBMI, FeatureExercise, FeatureDiet},
	Rows: [][]float64{
		{25, 25, 0, 0},
		{30, 22, 1, 1},
		{28, 30, 0, 0},
		{35, 28, 1, 1},
		{40, 35, 0, 0},
		{32, 23, 1, 1},
		{27, 31, 0, 0},
		{29, 26, 1, 1},
	},
	Labels: []float64{1, 0, 1, 0, 1, 0, 1, 1},
}

var cancerTable = TrainingTable{
	Columns: []string{FeatureAge, FeatureFamilyHistory, FeatureBloodPressure, FeatureWeight},
	Rows: [][]float64{
		{30, 1, 130, 70},
		{35, 0, 120, 60},
		{40, 1, 140, 80},
		{32, 0, 135, 75},
		{28, 0, 125, 68},
		{45, 1, 128, 85},
		{37, 1, 138, 72},
		{33, 0, 122, 78},
	},
	Labels: []float64{1, 0, 1, 0, 0, 1, 1, 0},
}
