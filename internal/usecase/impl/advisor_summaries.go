package impl

import (
	"fmt"
	"strings"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/stats"
	"farmdesk/internal/usecase"
)

const dateLayout = "2006-01-02"

func summarizeFarm(farm *entity.Farm, fields []*entity.Field) string {
	var sb strings.Builder
	if farm == nil {
		sb.WriteString("No farm details available.")
	} else {
		fmt.Fprintf(&sb, "Farm %q at latitude %.4f, longitude %.4f with %d staff.", farm.FarmName, farm.Latitude, farm.Longitude, len(farm.Staff))
	}

	if len(fields) == 0 {
		sb.WriteString("\nNo fields recorded.")

		return sb.String()
	}

	fmt.Fprintf(&sb, "\nFields (%d):", len(fields))
	for _, f := range fields {
		fmt.Fprintf(&sb, "\n- %s", describeField(f))
	}

	return sb.String()
}

func describeField(f *entity.Field) string {
	desc := fmt.Sprintf("%s, %.2f ha", f.Name, f.SizeHectares)
	if f.CropType != "" {
		desc += ", crop " + f.CropType
	}
	if f.SoilType != "" {
		desc += ", soil " + f.SoilType
	}

	return desc
}

func summarizeSoil(logs []*entity.SoilLog) string {
	if len(logs) == 0 {
		return "No soil tests on record."
	}

	avg := func(pick func(*entity.SoilLog) float64) float64 {
		values := make([]float64, len(logs))
		for i, l := range logs {
			values[i] = pick(l)
		}

		return stats.Mean(values)
	}

	return fmt.Sprintf(
		"Average of %d soil tests: pH %.1f, nitrogen %.1f, phosphorus %.1f, potassium %.1f, organic matter %.1f%%, moisture %.1f%%.",
		len(logs),
		avg(func(l *entity.SoilLog) float64 { return l.PH }),
		avg(func(l *entity.SoilLog) float64 { return l.Nitrogen }),
		avg(func(l *entity.SoilLog) float64 { return l.Phosphorus }),
		avg(func(l *entity.SoilLog) float64 { return l.Potassium }),
		avg(func(l *entity.SoilLog) float64 { return l.OrganicMatter }),
		avg(func(l *entity.SoilLog) float64 { return l.Moisture }),
	)
}

func summarizePlantings(logs []*entity.PlantingLog) string {
	if len(logs) == 0 {
		return "No recent plantings."
	}

	lines := make([]string, 0, len(logs))
	for _, l := range logs {
		crop := l.Crop
		if l.Variety != "" {
			crop += " (" + l.Variety + ")"
		}
		line := fmt.Sprintf("- %s: %s, %g %s", l.Date.Format(dateLayout), crop, l.Quantity, l.Unit)
		if l.Method != "" {
			line += ", " + l.Method
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	return strings.Join(lines, "\n")
}

func summarizeWeather(logs []*entity.WeatherLog) string {
	if len(logs) == 0 {
		return "No weather observations."
	}

	temps := make([]float64, len(logs))
	humidity := make([]float64, len(logs))
	rain := make([]float64, len(logs))
	wind := make([]float64, len(logs))
	for i, l := range logs {
		temps[i] = l.TemperatureC
		humidity[i] = l.HumidityPct
		rain[i] = l.RainfallMm
		wind[i] = l.WindSpeedKmh
	}

	return fmt.Sprintf(
		"Over %d observations: average temperature %.1f°C, humidity %.0f%%, total rainfall %.1f mm, average wind %.1f km/h.",
		len(logs), stats.Mean(temps), stats.Mean(humidity), stats.Sum(rain), stats.Mean(wind),
	)
}

// summarizeYield expects harvests newest first, as repositories return them.
func summarizeYield(harvests []*entity.HarvestingLog) (usecase.YieldSummary, string) {
	summary := usecase.YieldSummary{Harvests: len(harvests), Trend: stats.TrendInsufficientData}
	if len(harvests) == 0 {
		return summary, "No harvests on record."
	}

	quantities, unit := harvestQuantities(stats.Reverse(harvests))

	summary.AverageYield = stats.Mean(quantities)
	summary.Trend = stats.DetectTrend(quantities)

	average := fmt.Sprintf("%.1f", summary.AverageYield)
	if unit != "" {
		average += " " + unit
	}
	text := fmt.Sprintf("%d harvests averaging %s, trend %s", len(harvests), average, summary.Trend)
	if len(quantities) >= 2 {
		text += fmt.Sprintf(" (%+.0f%% first to latest)", stats.PercentChange(quantities[0], quantities[len(quantities)-1]))
	}

	return summary, text + "."
}

var kilogramsPerUnit = map[string]float64{
	"g":      0.001,
	"kg":     1,
	"kgs":    1,
	"lb":     0.45359237,
	"lbs":    0.45359237,
	"t":      1000,
	"ton":    1000,
	"tonne":  1000,
	"tonnes": 1000,
}

// harvestQuantities returns the quantities in one shared unit. Mixed mass
// units are converted to kg; any other mix is returned as recorded, unlabeled.
func harvestQuantities(harvests []*entity.HarvestingLog) ([]float64, string) {
	quantities := make([]float64, len(harvests))
	unit := strings.TrimSpace(harvests[0].Unit)
	uniform := true
	for i, h := range harvests {
		quantities[i] = h.Quantity
		if !strings.EqualFold(strings.TrimSpace(h.Unit), unit) {
			uniform = false
		}
	}
	if uniform {
		return quantities, unit
	}

	for i, h := range harvests {
		factor, ok := kilogramsPerUnit[strings.ToLower(strings.TrimSpace(h.Unit))]
		if !ok {
			for j, raw := range harvests {
				quantities[j] = raw.Quantity
			}

			return quantities, ""
		}
		quantities[i] = h.Quantity * factor
	}

	return quantities, "kg"
}

func summarizeFertilizer(logs []*entity.FertilizerLog) string {
	if len(logs) == 0 {
		return "No fertilizer applications."
	}

	lines := make([]string, 0, len(logs))
	for _, l := range logs {
		line := fmt.Sprintf("- %s: %s %g %s", l.Date.Format(dateLayout), l.Product, l.Quantity, l.Unit)
		if l.Method != "" {
			line += " (" + l.Method + ")"
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	return strings.Join(lines, "\n")
}

func summarizeIrrigation(logs []*entity.IrrigationLog) string {
	if len(logs) == 0 {
		return "No irrigation events."
	}

	water := make([]float64, len(logs))
	minutes := make([]float64, len(logs))
	for i, l := range logs {
		water[i] = l.WaterLiters
		minutes[i] = float64(l.DurationMinutes)
	}

	return fmt.Sprintf("%d irrigation events, average %.0f liters over %.0f minutes.", len(logs), stats.Mean(water), stats.Mean(minutes))
}

func summarizeAnimalHistory(health []*entity.HealthLog, breeding []*entity.BreedingLog) string {
	if len(health) == 0 && len(breeding) == 0 {
		return "No treatment or breeding history."
	}

	var lines []string
	for _, h := range health {
		line := fmt.Sprintf("- %s: %s", h.Date.Format(dateLayout), describeAnimal(h.AnimalID, h.Species))
		line += ": " + h.Condition
		if h.Treatment != "" {
			line += ", treated with " + h.Treatment
		}
		if h.Veterinarian != "" {
			line += " by " + h.Veterinarian
		}
		lines = append(lines, line)
	}
	for _, b := range breeding {
		line := fmt.Sprintf("- %s: %s bred", b.Date.Format(dateLayout), describeAnimal(b.AnimalID, b.Species))
		if b.MateID != "" {
			line += " with " + b.MateID
		}
		if b.Method != "" {
			line += " via " + b.Method
		}
		if b.Outcome != "" {
			line += ", outcome " + b.Outcome
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func describeAnimal(animalID, species string) string {
	if species == "" {
		return "animal " + animalID
	}

	return fmt.Sprintf("animal %s (%s)", animalID, species)
}

func summarizeFinance(revenue []*entity.RevenueLog, expenses []*entity.ExpenseLog) (usecase.FinanceSummary, string) {
	summary := usecase.FinanceSummary{
		RevenueByCategory: stats.SumBy(revenue,
			func(r *entity.RevenueLog) string { return categoryOrOther(r.Category) },
			func(r *entity.RevenueLog) float64 { return r.Amount },
		),
		ExpensesByCategory: stats.SumBy(expenses,
			func(e *entity.ExpenseLog) string { return categoryOrOther(e.Category) },
			func(e *entity.ExpenseLog) float64 { return e.Amount },
		),
	}
	for _, c := range summary.RevenueByCategory {
		summary.TotalRevenue += c.Total
	}
	for _, c := range summary.ExpensesByCategory {
		summary.TotalExpenses += c.Total
	}
	summary.Net = summary.TotalRevenue - summary.TotalExpenses

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total revenue %.2f from %d entries, total expenses %.2f from %d entries, net %.2f.",
		summary.TotalRevenue, len(revenue), summary.TotalExpenses, len(expenses), summary.Net)
	writeCategories(&sb, "Revenue by category", summary.RevenueByCategory)
	writeCategories(&sb, "Expenses by category", summary.ExpensesByCategory)

	return summary, sb.String()
}

func writeCategories(sb *strings.Builder, title string, totals []stats.CategoryTotal) {
	if len(totals) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n%s:", title)
	for _, c := range totals {
		fmt.Fprintf(sb, "\n- %s: %.2f", c.Category, c.Total)
	}
}

func categoryOrOther(category string) string {
	if category = strings.TrimSpace(category); category == "" {
		return "other"
	}

	return strings.ToLower(category)
}
