package pricing

import (
	"testing"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewspaperPrice_Daily(t *testing.T) {
	// Дневная цена всегда равна будничному тарифу, даже в выходной
	saturday := date(2025, time.March, 1)
	assert.Equal(t, 4.0, NewspaperPrice(domain.FrequencyDaily, saturday))

	monday := date(2025, time.March, 3)
	assert.Equal(t, 4.0, NewspaperPrice(domain.FrequencyDaily, monday))
}

func TestNewspaperPrice_Weekly(t *testing.T) {
	// 5*4 + 2*7 = 34 вне зависимости от даты
	for _, d := range []time.Time{
		date(2025, time.January, 1),
		date(2025, time.June, 15),
		date(2026, time.February, 28),
	} {
		assert.Equal(t, 34.0, NewspaperPrice(domain.FrequencyWeekly, d))
	}
}

func TestNewspaperPrice_Monthly(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
	}{
		{"from monday", date(2025, time.March, 3)},
		{"from saturday", date(2025, time.March, 1)},
		{"across month boundary", date(2025, time.January, 20)},
		{"leap february", date(2024, time.February, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Сверяем с независимым подсчетом будних и выходных дней в окне
			var weekdays, weekends int
			for i := 0; i < 30; i++ {
				switch tt.from.AddDate(0, 0, i).Weekday() {
				case time.Saturday, time.Sunday:
					weekends++
				default:
					weekdays++
				}
			}
			expected := float64(weekdays)*4 + float64(weekends)*7

			assert.Equal(t, expected, NewspaperPrice(domain.FrequencyMonthly, tt.from))
			assert.Equal(t, 30, weekdays+weekends)
		})
	}
}

func TestMilkPrice(t *testing.T) {
	pkg := &domain.MilkPackage{
		PriceDaily:   30,
		PriceWeekly:  200,
		PriceMonthly: 800,
	}

	assert.Equal(t, 30.0, MilkPrice(pkg, domain.FrequencyDaily))
	assert.Equal(t, 200.0, MilkPrice(pkg, domain.FrequencyWeekly))
	assert.Equal(t, 800.0, MilkPrice(pkg, domain.FrequencyMonthly))
	assert.Equal(t, 0.0, MilkPrice(nil, domain.FrequencyMonthly))
}

func TestBundleTotal_WithoutMilk(t *testing.T) {
	newspapers := []domain.Newspaper{{ID: 101}, {ID: 102}}

	// Две газеты по weekly-тарифу без молока: 34+34, без скидки
	total := BundleTotal(newspapers, nil, domain.FrequencyWeekly, date(2025, time.March, 3))
	assert.Equal(t, 68.0, total)
}

func TestBundleTotal_WithMilkAppliesDiscount(t *testing.T) {
	newspapers := []domain.Newspaper{{ID: 101}}
	milk := &domain.MilkPackage{PriceWeekly: 200}

	// (34 + 200) * 0.8
	total := BundleTotal(newspapers, milk, domain.FrequencyWeekly, date(2025, time.March, 3))
	assert.InDelta(t, 187.2, total, 1e-9)
}

func TestBundleTotal_EachNewspaperPricedIdentically(t *testing.T) {
	one := BundleTotal([]domain.Newspaper{{ID: 1}}, nil, domain.FrequencyMonthly, date(2025, time.March, 3))
	three := BundleTotal([]domain.Newspaper{{ID: 1}, {ID: 2}, {ID: 3}}, nil, domain.FrequencyMonthly, date(2025, time.March, 3))

	assert.InDelta(t, 3*one, three, 1e-9)
}
