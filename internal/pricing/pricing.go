package pricing

import (
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// Тарифы на газеты фиксированы расписанием по дням недели и не зависят
// от прайса конкретной газеты: будний день дешевле выходного.
const (
	weekdayRate = 4.0
	weekendRate = 7.0

	// Окно расчета месячной цены в днях
	monthlyWindowDays = 30

	// Множитель скидки за бандл газеты+молоко
	bundleDiscount = 0.8
)

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NewspaperPrice возвращает цену подписки на одну газету для заданной
// периодичности. Дневная цена всегда равна будничному тарифу независимо
// от фактического дня недели. Месячная цена считается по окну из 30 дней
// начиная с referenceDate и потому действительна только на момент расчета.
func NewspaperPrice(frequency domain.Frequency, referenceDate time.Time) float64 {
	switch frequency {
	case domain.FrequencyDaily:
		return weekdayRate
	case domain.FrequencyWeekly:
		// Фиксированная неделя: 5 будней + 2 выходных, без привязки к календарю
		return 5*weekdayRate + 2*weekendRate
	default:
		var weekdays, weekends int
		for i := 0; i < monthlyWindowDays; i++ {
			if isWeekend(referenceDate.AddDate(0, 0, i)) {
				weekends++
			} else {
				weekdays++
			}
		}
		return float64(weekdays)*weekdayRate + float64(weekends)*weekendRate
	}
}

// MilkPrice возвращает цену пакета молока по сохраненному прайсу.
// Отсутствие пакета дает нулевую цену.
func MilkPrice(pkg *domain.MilkPackage, frequency domain.Frequency) float64 {
	if pkg == nil {
		return 0
	}

	switch frequency {
	case domain.FrequencyDaily:
		return pkg.PriceDaily
	case domain.FrequencyWeekly:
		return pkg.PriceWeekly
	default:
		return pkg.PriceMonthly
	}
}

// BundleTotal считает итоговую стоимость подписки: сумма цен каждой
// выбранной газеты плюс цена молока. Если выбрано молоко, вся сумма
// умножается на множитель скидки за бандл.
func BundleTotal(newspapers []domain.Newspaper, milk *domain.MilkPackage, frequency domain.Frequency, referenceDate time.Time) float64 {
	var total float64
	for range newspapers {
		total += NewspaperPrice(frequency, referenceDate)
	}

	total += MilkPrice(milk, frequency)

	if milk != nil {
		total *= bundleDiscount
	}

	return total
}
