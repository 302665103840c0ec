package analysis

import (
	"fmt"
	"strings"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

var round1Base = []string{
	"Practice quantitative aptitude (percentages, probability, permutations)",
	"Revise logical reasoning patterns",
	"Review verbal ability and reading comprehension",
	"Practice time management for aptitude rounds",
	"Solve 2 full-length aptitude mock tests",
}

var round1Rules = []rule{
	{anyCategory: []string{taxonomy.KeyCoreCS}, items: []string{
		"Revise OS basics: process scheduling, deadlocks, memory management",
		"Revise DBMS: normalization, ACID properties, SQL queries",
		"Review networking fundamentals: TCP/IP, HTTP, DNS",
	}},
}

var round2Base = []string{
	"Solve 50+ problems on arrays, strings, and hashing",
	"Practice linked lists, stacks, and queues",
	"Study tree and graph traversals (BFS, DFS)",
	"Practice dynamic programming (top-down and bottom-up)",
	"Review sorting algorithms and their complexities",
}

var round2Rules = []rule{
	{anyKeyword: []string{"DSA"}, items: []string{
		"Practice advanced DSA: segment trees, tries, union-find",
		"Solve 10 medium/hard problems on a coding platform",
	}},
	{anyKeyword: []string{"OOP"}, items: []string{
		"Revise OOP principles: SOLID, design patterns, inheritance vs composition",
	}},
}

var round3Base = []string{
	"Prepare to explain 2 projects in depth (architecture, trade-offs)",
	"Be ready to discuss tech choices and alternatives",
	"Practice live coding with clear communication",
}

var round3Rules = []rule{
	{anyCategory: []string{taxonomy.KeyWeb}, items: []string{
		"Review frontend concepts: virtual DOM, state management, component lifecycle",
	}},
	{anyKeyword: []string{"React"}, items: []string{
		"Prepare React-specific: hooks, context, performance optimization",
	}},
	{anyKeyword: []string{"Node.js"}, items: []string{
		"Review Node.js event loop, middleware patterns, error handling",
	}},
	{anyKeyword: []string{"REST", "GraphQL"}, items: []string{
		"Explain REST vs GraphQL trade-offs with examples",
	}},
	{anyCategory: []string{taxonomy.KeyData}, items: []string{
		"Review database design: indexing, query optimization, joins",
	}},
	{anyKeyword: []string{"SQL"}, items: []string{
		"Practice writing complex SQL queries (joins, subqueries, window functions)",
	}},
	{anyKeyword: []string{"MongoDB"}, items: []string{
		"Explain MongoDB schema design and aggregation pipeline",
	}},
	{anyCategory: []string{taxonomy.KeyCloud}, items: []string{
		"Explain your deployment pipeline and CI/CD setup",
	}},
	{anyKeyword: []string{"Docker"}, items: []string{
		"Be ready to explain Docker containers vs VMs, Dockerfile basics",
	}},
	{anyKeyword: []string{"AWS", "Azure", "GCP"}, items: []string{
		"Know core cloud services you have used and why",
	}},
	{anyCategory: []string{taxonomy.KeyLanguages}, dynamic: func(skills model.ExtractedSkills) []string {
		langs := skills[taxonomy.KeyLanguages]
		return []string{fmt.Sprintf("Deep-dive into %s: language-specific idioms and best practices", strings.Join(langs, ", "))}
	}},
	{anyCategory: []string{taxonomy.KeyTesting}, items: []string{
		"Explain your testing strategy: unit, integration, e2e",
	}},
}

var round4Base = []string{
	`Prepare your "Tell me about yourself" pitch (90 seconds)`,
	"Practice behavioral questions using STAR method",
	"Prepare answers for: strengths, weaknesses, conflict resolution",
	"Research the company: products, culture, recent news",
	"Prepare 3 thoughtful questions to ask the interviewer",
	"Practice salary negotiation basics",
	"Review your resume for consistency and talking points",
}

// GenerateChecklist derives the 4-round preparation checklist from the
// extraction. Exactly 4 rounds are always produced; conditional items are
// appended in fixed table order so identical extractions yield identical
// checklists. Round 4 (managerial/HR) is unconditional.
func GenerateChecklist(skills model.ExtractedSkills) []model.ChecklistRound {
	return []model.ChecklistRound{
		{Round: "Round 1", Title: "Aptitude & Basics", Items: applyRules(round1Base, round1Rules, skills)},
		{Round: "Round 2", Title: "DSA & Core CS", Items: applyRules(round2Base, round2Rules, skills)},
		{Round: "Round 3", Title: "Technical Interview (Projects + Stack)", Items: applyRules(round3Base, round3Rules, skills)},
		{Round: "Round 4", Title: "Managerial / HR", Items: applyRules(round4Base, nil, skills)},
	}
}
