package weather

import (
	"strings"
	"testing"
)

func TestTips_RainWithHairService(t *testing.T) {
	cond := Conditions{Condition: "rain", Temperature: 15}

	tips := Tips(cond, []string{"Haircut", "Color"}, "14:00")
	if len(tips) == 0 {
		t.Fatalf("expected tips for rain")
	}

	joined := strings.Join(tips, " ")
	if !strings.Contains(joined, "umbrella") {
		t.Fatalf("tips = %v, want umbrella advice", tips)
	}
}

func TestTips_MorningSlotAdvice(t *testing.T) {
	cond := Conditions{Condition: "cloudy", Temperature: 20}

	tips := Tips(cond, []string{"Manicure"}, "09:30")

	joined := strings.Join(tips, " ")
	if !strings.Contains(joined, "Morning slot") {
		t.Fatalf("tips = %v, want morning-slot advice", tips)
	}
}

func TestTips_MildAfternoonHasNothingToSay(t *testing.T) {
	cond := Conditions{Condition: "sunny", Temperature: 21}

	tips := Tips(cond, []string{"Beard Trim"}, "14:30")
	if len(tips) != 0 {
		t.Fatalf("tips = %v, want none", tips)
	}
}
