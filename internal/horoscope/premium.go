package horoscope

import (
	"fmt"
	"math/rand"
)

// luckyColors 是幸运颜色的固定候选集
var luckyColors = []string{"gold", "emerald", "sapphire"}

// PremiumAspects 定义了高级运势的结构化数据包
type PremiumAspects struct {
	DetailedForecast  string `json:"detailed_forecast"`
	LoveCompatibility string `json:"love_compatibility"`
	CareerAdvice      string `json:"career_advice"`
	HealthTips        string `json:"health_tips"`
	LuckyNumbers      []int  `json:"lucky_numbers"`
	LuckyColors       string `json:"lucky_colors"`
	MoonInfluence     string `json:"moon_influence"`
	BirthChartInsight string `json:"birth_chart_insight,omitempty"`
}

// GeneratePremium 生成高级运势数据包。
// 基础预测复用本地模板池的确定性选取；幸运数字和幸运颜色
// 每次调用随机生成，不要求可复现。
func GeneratePremium(sign string, date string, birthTime string, location string) PremiumAspects {
	_ = location // 出生地点暂未参与解读，保留参数以兼容请求结构

	luckyNumbers := make([]int, 3)
	for i := range luckyNumbers {
		luckyNumbers[i] = rand.Intn(50) + 1
	}

	aspects := PremiumAspects{
		DetailedForecast:  templateFor(sign, date),
		LoveCompatibility: "Сегодня ваша энергия привлечет нужных людей. Лучшая совместимость с знаками Огня.",
		CareerAdvice:      "Профессиональные возможности открываются через коммуникацию с коллегами.",
		HealthTips:        "Обратите внимание на сон и питание - ваше тело нуждается в заботе.",
		LuckyNumbers:      luckyNumbers,
		LuckyColors:       luckyColors[rand.Intn(len(luckyColors))],
		MoonInfluence:     "Луна в третьей четверти усиливает вашу интуицию.",
	}

	if birthTime != "" {
		aspects.BirthChartInsight = fmt.Sprintf(
			"Ваше время рождения (%s) дает дополнительную энергию в первой половине дня.", birthTime)
	}

	return aspects
}
