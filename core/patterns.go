package core

import "regexp"

// Pattern catalog for all rubric checks. Each pattern is a named package
// variable so individual rules can be exercised directly in tests without
// re-deriving regexes.

// Shared across both pipelines.
var (
	// reStructureMarker matches a bullet, numbered, or lettered list marker at
	// the start of any line.
	reStructureMarker = regexp.MustCompile(`(?m)(^|\n)[ \t]*(?:[-*•]|\d+[.)]|[a-z][.)])\s+`)

	// reListLineStart matches a list marker at the start of a single line.
	reListLineStart = regexp.MustCompile(`^(?:[-*•]|\d+[.)]|[a-z][.)])\s+`)

	// reStepMarkerPrefix strips leading markers when inspecting step text.
	reStepMarkerPrefix = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)]|[a-z][.)])\s*`)

	// reInlineStep captures "1. text" fragments embedded in prose.
	reInlineStep = regexp.MustCompile(`(\d+[.)])\s*([^;]+)`)

	// reListAfterNewline locates the first list marker on a later line, used
	// to split a preamble from the step list that follows it.
	reListAfterNewline = regexp.MustCompile(`\n\s*(?:[-*•]|\d+[.)]|[a-z][.)])\s+`)
)

// Control pipeline patterns.
var (
	reModalVerbs   = regexp.MustCompile(`(?i)\b(should|could|may|might|must|shall|ensure|ensures|ensured)\b`)
	reFutureTense  = regexp.MustCompile(`(?i)\b(will|shall|going to)\b`)
	reVendorNames  = regexp.MustCompile(`(?i)\b(aws|azure|gcp|google\s+cloud|okta|servicenow|cisco|palo\s*alto|fortinet|splunk|datadog|salesforce|snowflake|crowdstrike|microsoft|oracle|ibm|sap)\b`)
	reJargonWords  = regexp.MustCompile(`(?i)\b(utilize|leverage|synergy|holistic|best[-\s]?of[-\s]?breed|operationalize)\b`)
	reRoleSpecific = regexp.MustCompile(`(?i)\b(it|security|engineering|devops|audit|privacy|hr|legal|finance)\s+(team|dept|department|administrator|manager)\b`)

	reDirectiveVerbs = regexp.MustCompile(`(?i)^\s*(configure|install|deploy|enable|set\s*up|create|develop|implement|establish|define)\b`)
	rePresentTense   = regexp.MustCompile(`(?i)\b(is|are|has|have|exists?|remains?|includes?|contains?|provides?|ensures?|maintains?|supports?|performs?|conducts?)\b`)
	rePassiveVoice   = regexp.MustCompile(`(?i)\b(is|are|be|being|been)\s+[a-z]+ed\b`)
	reActionWords    = regexp.MustCompile(`(?i)\b(protection|detection|monitoring|review|assessment|management|implementation|configuration|establishment|maintenance|planning|testing|auditing|tracking|reporting|training|enforcement|validation|verification|analysis)\b`)

	reVagueNameTerms = regexp.MustCompile(`(?i)\b(things|stuff|items|matters|issues)\b`)
	reGenericName    = regexp.MustCompile(`(?i)^(security|compliance|controls?|management|system)$`)

	reOutcomeStatement = regexp.MustCompile(`(?i)\b(is|are)\s+[a-z]+ed\b`)
	reAndWord          = regexp.MustCompile(`(?i)\band\b`)
	reOrWord           = regexp.MustCompile(`(?i)\bor\b`)

	// reListMarkerAnywhere flags list markers embedded mid-description. Lowercase
	// letter markers only, so prose like "A This" is not a false positive.
	reListMarkerAnywhere  = regexp.MustCompile(`(?:[-*•]|\d+[.)]|[a-z][.)])\s+[A-Z]`)
	reImplementationWords = regexp.MustCompile(`(?i)\b(to achieve|implement|steps|following|procedure|process):`)

	reVagueQualifiers = regexp.MustCompile(`(?i)\b(appropriate|adequate|reasonable|sufficient|proper|effective)\b`)
	reAcronym         = regexp.MustCompile(`\b([A-Z]{2,})\b`)

	reGuidDirectiveStart = regexp.MustCompile(`(?i)^(deploy|implement|configure|monitor|review|establish|create|maintain|enable)\b`)
	reObjectiveLanguage  = regexp.MustCompile(`(?i)\b(objective|purpose|goal|aims?\s+to|intended\s+to|designed\s+to|to\s+(?:ensure|establish|support|define|create|maintain|implement)|(?:should|must|will)\s+(?:establish|define|create|ensure|support|maintain|implement))\b`)
	reRationaleLanguage  = regexp.MustCompile(`(?i)\b(rationale|because|important|critical|necessary|essential|to\s+(?:support|enable|help|allow|protect|prevent|ensure|maintain|promote)|promotes?|enables?|supports?|ensures?|maintains?|helps?|allows?|prevents?|protects?)\b`)

	reGuidActionVerbs    = regexp.MustCompile(`(?i)\b(implement|configure|review|monitor|document|define|establish|maintain|enable|create|develop|conduct|perform|verify|validate|assess|identify|ensure|designate|appoint|deploy|install|update|track|report|communicate|publish|record|escalate|investigate|remediate|disable)\b`)
	rePresentImperative  = regexp.MustCompile(`(?i)\b(implement|configure|review|monitor|document|define|establish|maintain|enable|create|develop|conduct|perform|verify|validate|assess|identify|designate|appoint)\b`)
	rePastTenseVerbs     = regexp.MustCompile(`(?i)\b(configured|reviewed|implemented|established|created|developed|maintained|enabled|conducted|performed)\b`)
	reGuidPassiveSteps   = regexp.MustCompile(`(?i)\b(is|are|be)\s+(?:configured|reviewed|implemented|established|maintained|enabled|conducted|performed)\b`)
	reModalOrArticleWord = regexp.MustCompile(`(?i)^(the|a|an|should|must|will|shall|may|can|could|would)$`)
	reCapitalizedWord    = regexp.MustCompile(`^[A-Z]`)
)

// Evidence task pipeline patterns.
var (
	reArtifactNouns   = regexp.MustCompile(`(?i)\b(diagrams?|reports?|exports?|screenshots?|logs?|tickets?|records?|registers?|configs?|attestations?|approvals?|sign[-\s]?offs?|evidence)\b`)
	reWhatOutcomeLike = regexp.MustCompile(`(?i)\b(has\s+been|is\s+configured|are\s+documented|results\s+are\s+recorded|is\s+performed|is\s+maintained|is\s+in\s+place|are\s+completed|are\s+approved)\b`)
	reEnsureWord      = regexp.MustCompile(`(?i)\bensure(s|d)?\b`)
	reVagueWords      = regexp.MustCompile(`(?i)\b(appropriate|adequate|reasonable|sufficient|as\s+necessary|as\s+needed)\b`)
	reSlangWords      = regexp.MustCompile(`(?i)\b(apps)\b`)
	// Acronyms that must be spelled out on first mention. Case-sensitive.
	reAcronymsNeedExpansion = regexp.MustCompile(`\b(DR|CAB)\b`)
	reEtJargonWords         = regexp.MustCompile(`(?i)\b(utilize|leverage|synergy|holistic|best[-\s]?of[-\s]?breed)\b`)
	reEtVendorWords         = regexp.MustCompile(`(?i)\b(aws|azure|gcp|google\s+cloud|okta|servicenow|cisco|palo\s*alto|paloalto|fortinet|checkpoint|splunk|datadog|salesforce|snowflake|crowdstrike)\b`)

	reRelativeTime   = regexp.MustCompile(`(?i)\b(last|past)\s+\d+\s+(?:day|days|week|weeks|month|months|quarter|quarters|year|years)\b`)
	reExplicitDate   = regexp.MustCompile(`(?i)\b(\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|timestamp(ed)?|dated)\b`)
	reFrameworkTieIn = regexp.MustCompile(`(?i)\b(iso\s*27001|soc\s*2|nist|pci\s*dss|hipaa|gdpr|annex|clause|article\s+\d+)\b`)
	reCrossDept      = regexp.MustCompile(`(?i)\b(hr|human\s+resources|finance|marketing|sales|legal|procurement)\b`)

	reCollectionVerbs = regexp.MustCompile(`(?i)\b(provide|attach|include|maintain|retain|export|query|capture|collect|upload|submit|link|store)\b`)
	reBroadScope      = regexp.MustCompile(`(?i)\b(all\s+(apps|applications|systems|users|departments|teams)|organization[-\s]?wide|enterprise[-\s]?wide)\b`)
	reOneOrMoreOf     = regexp.MustCompile(`(?i)\bone or more of\b`)

	reTimeSensitiveArtifacts = regexp.MustCompile(`(?i)\b(logs?|tickets?|records?|registers?|reports?|exports?)\b`)
	rePointInTimeArtifacts   = regexp.MustCompile(`(?i)\b(screenshots?|diagrams?|configs?|configurations?|attestations?)\b`)
	reCurrencyIndicators     = regexp.MustCompile(`(?i)\b(current|existing|active|running|in[-\s]?place|production|live)\b`)

	reStandardPrefix      = regexp.MustCompile(`(?i)^\s*provide evidence (?:to show|that)\b`)
	reStandardPrefixStrip = regexp.MustCompile(`(?i)^\s*provide evidence (?:to show|that)\s+`)
	reWhatDirectiveStart  = regexp.MustCompile(`(?i)^\s*(provide|maintain|attach|review|configure|monitor|create|produce|document|conduct|perform|ensure)\b`)
	reHeavyChain          = regexp.MustCompile(`(?i)[,;]\s*and\b|\band\b.+\band\b`)
	reSentenceBoundary    = regexp.MustCompile(`[.!?]\s+`)

	reHowRoleDirected    = regexp.MustCompile(`(?i)\b(security|it|engineering|devops|audit|privacy|compliance|hr|legal|finance|admin|manager|director|officer|analyst|specialist|coordinator)\s+(team|dept|department|staff|personnel|manager|director|officer)\b`)
	reRoleDirectiveModal = regexp.MustCompile(`(?i)\b(must|shall|should|will|responsible for|assigned to|performed by)\b`)
	reHowImplSteps       = regexp.MustCompile(`(?i)\b(configure|install|deploy|enable|set\s*up|hardening|patch|code|develop)\b`)

	reApprovalArtifact = regexp.MustCompile(`(?i)\b(approval|sign[-\s]?off|attestation|authorization)(\s+(records?|documentation|evidence|report))?\b`)
	reSystemRef        = regexp.MustCompile(`(?i)\b(system|application|service|platform|tool|solution)\b`)
	reLongSentence     = regexp.MustCompile(`\b(\w+\b[\s,;:]){30,}`)

	reTimeToken       = regexp.MustCompile(`(?i)\b(last\s+\d+\s+\w+|\d{4}-\d{2}-\d{2})\b`)
	reOutcomeSubject  = regexp.MustCompile(`(?i)\b([A-Za-z][\w\s-]+?)\s+(?:are|is|has\s+been|have\s+been|were|was)\b`)
	reHyphenatedTerm  = regexp.MustCompile(`(?i)\b([a-z]+(?:-[a-z]+){1,3})\b`)
	reTechPhrase      = regexp.MustCompile(`(?i)\b([a-z]+\s+(?:password|credential|access|review|test|recovery|management|control|security|configuration)s?)\b`)
	reAdminConcepts   = regexp.MustCompile(`(?i)\b(centrally[-\s]administered|decentralized|shared|individual|personal|organizational|departmental)\b`)
	reIdentityConcepts = regexp.MustCompile(`(?i)\b(anonymization|anonymized|de[-\s]identified|identified|named)\b`)
)

// Cadence and clause detection, exposed for rubric extension.
var (
	reCadence = regexp.MustCompile(`(?i)(\b\d+\s*(day|days|week|weeks|month|months|year|years)\b|\b(annual|annually|quarterly|monthly|weekly)\b)`)
	reClause  = regexp.MustCompile(`(?i)(PCI|ISO|SOX|HIPAA|GDPR|NIST|CSA|SOC|clause|section)`)
)
