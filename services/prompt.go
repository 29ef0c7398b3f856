package services

import "fmt"

// GoalsStartMarker and GoalsEndMarker delimit the machine-readable goals
// block the model appends after the narrative.
const (
	GoalsStartMarker = "---GOALS_JSON---"
	GoalsEndMarker   = "---END_GOALS---"
)

// SystemPrompt instructs the model on the narrative structure and the
// delimited goals block. It is fixed per deployment, never per request.
const SystemPrompt = `You are a world-class life coach and strategic advisor. Your role is to create comprehensive, personalized life strategies that help people achieve happiness, health, and wealth simultaneously.

When given information about a person, create a structured, actionable strategy covering these sections:

# [Name]'s Life Strategy

## Executive Summary
A brief 2-3 sentence overview of where they are and where they're headed.

## Health & Wellness Strategy
Specific, tailored recommendations for physical and mental wellbeing based on their current fitness level, diet, and health goals.

## Career & Skills Strategy
A clear path to career growth, skill development, and professional fulfillment.

## Financial Strategy
Concrete, prioritized steps toward financial independence and wealth building based on their current situation.

## Happiness & Fulfillment Strategy
Actions to increase joy, purpose, and life satisfaction by leveraging their specific interests and values.

## 90-Day Action Plan
10-15 specific, prioritized actions to take in the next 90 days — a mix of quick wins and foundation-builders. Be very specific.

## Key Mindset Shifts
2-3 mental reframes that will help them most based on their situation.

Be direct, practical, and encouraging. Use their specific details to make every recommendation highly personalized. Include realistic timelines and specific numbers where possible. Format with clear headers and bullet points.

After the strategy, on a new line, output exactly ` + GoalsStartMarker + ` followed by a JSON object with a "goals" array and then ` + GoalsEndMarker + `. Each goal has: id (string, unique), category (string), title (string), metric (string), unit (string), currentValue (number), targetValue (number), deadline (ISO date string, optional), trackingSources (array of strings). Derive 5-8 goals from the strategy. Output nothing after ` + GoalsEndMarker + `.`

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}

func formatted(value, format string, args ...interface{}) string {
	if value == "" {
		return "Not provided"
	}
	return fmt.Sprintf(format, args...)
}

// BuildPrompt renders the questionnaire answers into the user prompt. Every
// recognized field appears either with its value or as "Not provided".
// Height follows feet: heightIn alone, without heightFt, still reads as
// "Not provided".
func BuildPrompt(data map[string]string) string {
	height := "Not provided"
	if data["heightFt"] != "" {
		inches := data["heightIn"]
		if inches == "" {
			inches = "0"
		}
		height = fmt.Sprintf("%s'%s\"", data["heightFt"], inches)
	}

	targetWeightUnit := data["weightUnit"]
	if targetWeightUnit == "" {
		targetWeightUnit = "lbs"
	}

	name := data["name"]
	if name == "" {
		name = "this person"
	}

	return `Please create a comprehensive life strategy for the following person:

**Personal Information:**
- Name: ` + orNotProvided(data["name"]) + `
- Age: ` + orNotProvided(data["age"]) + `
- Weight: ` + formatted(data["weight"], "%s %s", data["weight"], data["weightUnit"]) + `
- Height: ` + height + `

**Health & Wellness:**
- Fitness Level: ` + orNotProvided(data["fitnessLevel"]) + `
- Sleep: ` + formatted(data["sleepHours"], "%s hours/night", data["sleepHours"]) + `
- Target Weight: ` + formatted(data["targetWeight"], "%s %s", data["targetWeight"], targetWeightUnit) + `
- Current Daily Steps: ` + formatted(data["dailySteps"], "%s steps/day", data["dailySteps"]) + `
- Health Goals: ` + orNotProvided(data["healthGoals"]) + `
- Diet: ` + orNotProvided(data["dietDescription"]) + `

**Interests & Skills:**
- Hobbies: ` + orNotProvided(data["hobbies"]) + `
- What brings joy: ` + orNotProvided(data["joyActivities"]) + `
- Skills: ` + orNotProvided(data["skills"]) + `

**Career:**
- Occupation: ` + orNotProvided(data["currentOccupation"]) + `
- Experience: ` + formatted(data["yearsExperience"], "%s years", data["yearsExperience"]) + `
- Career Satisfaction: ` + formatted(data["careerSatisfaction"], "%s/10", data["careerSatisfaction"]) + `
- Career Goals: ` + orNotProvided(data["careerGoals"]) + `

**Finances:**
- Annual Income: ` + orNotProvided(data["annualIncome"]) + `
- Net Worth: ` + orNotProvided(data["netWorth"]) + `
- Monthly Savings Capacity: ` + formatted(data["monthlySavings"], "$%s/month", data["monthlySavings"]) + `
- Financial Goals: ` + orNotProvided(data["financialGoals"]) + `
- Financial Challenges: ` + orNotProvided(data["financialChallenges"]) + `

**Life Vision:**
- Definition of happiness: ` + orNotProvided(data["happinessDefinition"]) + `
- 1-Year Goals: ` + orNotProvided(data["shortTermGoals"]) + `
- 5+ Year Goals: ` + orNotProvided(data["longTermGoals"]) + `
- Biggest Obstacle: ` + orNotProvided(data["biggestObstacle"]) + `

Please provide a detailed, actionable strategy to help ` + name + ` progress toward being happy, healthy, and wealthy. Remember to append the ` + GoalsStartMarker + ` block at the very end.`
}
