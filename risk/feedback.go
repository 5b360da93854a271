package risk

import "fmt"

// EscalationMessage 危急提醒文案
const EscalationMessage = "Critical Risk Detected. Please consult a doctor immediately."

// ExerciseFeedback 根据当日运动时长生成反馈
func ExerciseFeedback(minutes int, kind ExerciseType) string {
	if minutes < ExerciseGoalMinutes {
		return fmt.Sprintf("You exercised only %d minutes today. Aim for at least %d mins. Suggested: Cardio or Strength training.",
			minutes, ExerciseGoalMinutes)
	}
	return fmt.Sprintf("Great! You exercised %d mins today (%s). Keep it up!", minutes, kind)
}

// Insights 指出主要风险因素
func Insights(in Input) []string {
	out := []string{}
	if in.Hemoglobin < 10 {
		out = append(out, "Low hemoglobin is a major contributor to anemia risk.")
	}
	if in.BloodPressure > 130 || in.BloodSugar > 110 {
		out = append(out, "Elevated BP or sugar increases pregnancy-related risks.")
	}
	if in.BMI > 30 {
		out = append(out, "High BMI contributes to lifestyle disease risk.")
	}
	return out
}

// DailyChecklist 每日健康打卡项
var DailyChecklist = []string{
	"Drink 8 glasses of water",
	"30 mins light exercise / walk",
	"Eat iron-rich food (spinach, lentils)",
	"Sleep 7-8 hours",
	"Monitor BP & sugar (if applicable)",
}
