package service

const (
	InsightProfileMatch  = "profile_match"
	InsightTeamChemistry = "team_chemistry"
	InsightChurn         = "churn_recommendation"
)

const insightResponseFormat = `
Respond ONLY with strict JSON:
{"headline": "<max 12 words>", "summary": "<2-4 sentences>", "recommendations": ["<short action>", "..."]}
Do not invent numbers: every figure you cite must appear in the data above.
`

const profileMatchPromptTemplate = `
You are a talent analytics advisor writing for a hiring manager.
Below is a deterministic comparison between a candidate's psychometric profile and the ideal
profile derived from the top performers of the role's department. Statuses are "above",
"below" or "aligned" relative to a noise band.

Data (JSON):
%s

Explain where the candidate aligns, where they diverge, and what to probe in the next interview.
Avoid bias: talk about work behaviours, never about personal characteristics.
` + insightResponseFormat

const teamChemistryPromptTemplate = `
You are an onboarding coach. Below are predicted chemistry scores between a person and the
colleagues they will work with, with the risk tier and guidance for each pair, plus an
interpersonal flexibility score when relationship data exists.

Data (JSON):
%s

Summarise the team dynamics and list the two or three most valuable onboarding actions.
` + insightResponseFormat

const churnPromptTemplate = `
You are an HR business partner. Below is a rule-based churn risk classification for an
employee (tier, triggered factors and the latest quarterly signals).

Data (JSON):
%s

Explain the main drivers in plain language and recommend retention actions the manager can take
this quarter. If the tier is Low, keep it brief.
` + insightResponseFormat

var insightTemplates = map[string]string{
	InsightProfileMatch:  profileMatchPromptTemplate,
	InsightTeamChemistry: teamChemistryPromptTemplate,
	InsightChurn:         churnPromptTemplate,
}
