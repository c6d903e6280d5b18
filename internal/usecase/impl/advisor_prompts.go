package impl

import (
	"strings"
	"text/template"

	"farmdesk/internal/domain/service"
)

const advisorSystemInstruction = "You are a practical agronomy, livestock and farm-finance advisor. " +
	"Ground every answer in the farm data provided, say so when the data is thin, and keep items short and actionable. " +
	"Reply only with JSON matching the requested schema."

var (
	questionPrompt = template.Must(template.New("question").Parse(`A farmer asks:
"{{.Question}}"

Farm context:
{{.Context}}

Answer the question for this farm and add a few concrete tips.`))

	plantingPrompt = template.Must(template.New("planting").Parse(`Advise on planting {{.Crop}}{{if .Field}} in field {{.Field}}{{end}}.

Soil:
{{.Soil}}

Recent plantings:
{{.Plantings}}

Recent weather:
{{.Weather}}

Recommend how to plant, the best planting window, soil amendments and the main risks.`))

	yieldPrompt = template.Must(template.New("yield").Parse(`Help improve yield{{if .Crop}} of {{.Crop}}{{end}}{{if .Field}} in field {{.Field}}{{end}}.

Harvest history:
{{.Yield}}

Fertilizer:
{{.Fertilizer}}

Irrigation:
{{.Irrigation}}

Soil:
{{.Soil}}

Give recommendations, the priority actions for the next season and the expected impact.`))

	livestockPrompt = template.Must(template.New("livestock").Parse(`Assess an animal health concern.
Species: {{if .Species}}{{.Species}}{{else}}unspecified{{end}}
{{- if .AnimalID}}
Animal: {{.AnimalID}}{{end}}
Symptoms: {{.Symptoms}}

Treatment history:
{{.History}}

List possible conditions, recommended actions, an urgency of low, medium, high or emergency, and whether a veterinarian should be called.`))

	financePrompt = template.Must(template.New("finance").Parse(`Review the farm's finances{{if .Period}} for {{.Period}}{{end}}.

{{.Summary}}

Give insights, cost-saving ideas and revenue opportunities.`))
)

func stringList(description string) *service.Schema {
	return &service.Schema{
		Type:        service.SchemaArray,
		Description: description,
		Items:       &service.Schema{Type: service.SchemaString},
	}
}

var (
	questionSchema = &service.Schema{
		Type: service.SchemaObject,
		Properties: map[string]*service.Schema{
			"answer": {Type: service.SchemaString, Description: "Direct answer to the question"},
			"tips":   stringList("Short practical tips"),
		},
		Required: []string{"answer", "tips"},
	}

	plantingSchema = &service.Schema{
		Type: service.SchemaObject,
		Properties: map[string]*service.Schema{
			"recommendations": stringList("Planting recommendations"),
			"planting_window": {Type: service.SchemaString, Description: "Best time window to plant"},
			"soil_amendments": stringList("Soil amendments to apply before planting"),
			"risks":           stringList("Main risks to watch for"),
		},
		Required: []string{"recommendations", "planting_window", "soil_amendments", "risks"},
	}

	yieldSchema = &service.Schema{
		Type: service.SchemaObject,
		Properties: map[string]*service.Schema{
			"recommendations":  stringList("Yield improvement recommendations"),
			"priority_actions": stringList("Actions to take first"),
			"expected_impact":  {Type: service.SchemaString, Description: "Expected effect on yield"},
		},
		Required: []string{"recommendations", "priority_actions", "expected_impact"},
	}

	livestockSchema = &service.Schema{
		Type: service.SchemaObject,
		Properties: map[string]*service.Schema{
			"possible_conditions": stringList("Conditions consistent with the symptoms"),
			"recommended_actions": stringList("Immediate steps for the farmer"),
			"urgency": {
				Type: service.SchemaString,
				Enum: []string{"low", "medium", "high", "emergency"},
			},
			"vet_recommended": {Type: service.SchemaBoolean},
		},
		Required: []string{"possible_conditions", "recommended_actions", "urgency", "vet_recommended"},
	}

	financeSchema = &service.Schema{
		Type: service.SchemaObject,
		Properties: map[string]*service.Schema{
			"insights":              stringList("Observations about the numbers"),
			"cost_savings":          stringList("Ways to reduce expenses"),
			"revenue_opportunities": stringList("Ways to grow revenue"),
		},
		Required: []string{"insights", "cost_savings", "revenue_opportunities"},
	}
)

func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}
