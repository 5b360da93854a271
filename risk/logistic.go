package risk

import (
	"errors"
	"fmt"
	"math"
)

// ErrArity 特征向量长度与模型列数不一致
var ErrArity = errors.New("特征向量长度不匹配")

const (
	// defaultC 惩罚系数倒数，与常见逻辑回归库的默认值一致
	defaultC      = 1.0
	maxNewtonIter = 100
	gradTol       = 1e-8
)

// Model 单类别二分类逻辑回归模型，拟合后只读
type Model struct {
	Columns    []string  `json:"columns"`
	Intercept  float64   `json:"intercept"`
	Weights    []float64 `json:"weights"`
	Iterations int       `json:"iterations"` // 拟合时牛顿迭代次数
}

// Fit 在训练表上用最大似然（L2 惩罚，截距不惩罚）拟合逻辑回归
func Fit(table TrainingTable) (*Model, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	n := len(table.Columns) + 1
	beta := make([]float64, n)
	x := designMatrix(table.Rows)

	iter := 0
	for ; iter < maxNewtonIter; iter++ {
		grad, hess := gradientHessian(x, table.Labels, beta)
		if maxAbs(grad) < gradTol {
			break
		}
		step, err := solve(hess, grad)
		if err != nil {
			return nil, fmt.Errorf("拟合失败: %w", err)
		}

		// 回溯线搜索，保证目标函数下降
		cur := objective(x, table.Labels, beta)
		slope := dot(grad, step)
		t := 1.0
		next := make([]float64, n)
		for {
			for j := range beta {
				next[j] = beta[j] - t*step[j]
			}
			if objective(x, table.Labels, next) <= cur-1e-4*t*slope || t < 1e-10 {
				break
			}
			t /= 2
		}
		copy(beta, next)
	}

	cols := make([]string, len(table.Columns))
	copy(cols, table.Columns)
	return &Model{
		Columns:    cols,
		Intercept:  beta[0],
		Weights:    beta[1:],
		Iterations: iter,
	}, nil
}

// Predict 返回正类（有风险）概率
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("%w: 得到 %d 个特征，模型需要 %d 个 %v", ErrArity, len(features), len(m.Weights), m.Columns)
	}
	z := m.Intercept
	for i, w := range m.Weights {
		z += w * features[i]
	}
	return sigmoid(z), nil
}

// designMatrix 在每行前补常数 1 作为截距列
func designMatrix(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		r := make([]float64, len(row)+1)
		r[0] = 1
		copy(r[1:], row)
		out[i] = r
	}
	return out
}

func objective(x [][]float64, y, beta []float64) float64 {
	var penalty float64
	for j := 1; j < len(beta); j++ {
		penalty += beta[j] * beta[j]
	}
	var loss float64
	for i, row := range x {
		z := dot(row, beta)
		loss += softplus(z) - y[i]*z
	}
	return 0.5*penalty + defaultC*loss
}

func gradientHessian(x [][]float64, y, beta []float64) ([]float64, [][]float64) {
	n := len(beta)
	grad := make([]float64, n)
	hess := make([][]float64, n)
	for j := range hess {
		hess[j] = make([]float64, n)
	}
	for j := 1; j < n; j++ {
		grad[j] = beta[j]
		hess[j][j] = 1
	}
	for i, row := range x {
		p := sigmoid(dot(row, beta))
		r := defaultC * (p - y[i])
		w := defaultC * p * (1 - p)
		for j := 0; j < n; j++ {
			grad[j] += r * row[j]
			for k := 0; k < n; k++ {
				hess[j][k] += w * row[j] * row[k]
			}
		}
	}
	// 极小的对角扰动，防止完全可分数据上截距方向退化
	for j := 0; j < n; j++ {
		hess[j][j] += 1e-12
	}
	return grad, hess
}

// solve 部分主元高斯消元求解 a·x = b，不修改入参
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	m := make([][]float64, n)
	for i := range a {
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-300 {
			return nil, errors.New("海森矩阵奇异")
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := col + 1; r < n; r++ {
			f := m[r][col] / m[col][col]
			for k := col; k <= n; k++ {
				m[r][k] -= f * m[col][k]
			}
		}
	}
	out := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := m[i][n]
		for k := i + 1; k < n; k++ {
			s -= m[i][k] * out[k]
		}
		out[i] = s / m[i][i]
	}
	return out, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// softplus log(1+e^z) 的数值稳定写法
func softplus(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}
	return math.Log1p(math.Exp(z))
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
