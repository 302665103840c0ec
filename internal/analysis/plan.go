package analysis

import (
	"fmt"
	"strings"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

var day1Base = []string{
	"Revise number systems, percentages, profit & loss",
	"Practice 20 aptitude questions",
	"Review basic data types and control structures",
}

var day1Rules = []rule{
	{anyCategory: []string{taxonomy.KeyCoreCS}, items: []string{
		"Revise OS: process management, threading, scheduling",
		"Review DBMS: ER diagrams, normalization, keys",
	}},
}

var day2Base = []string{
	"Revise networking: OSI model, TCP vs UDP, HTTP methods",
	"Practice logical reasoning (seating, puzzles, blood relations)",
	"Review OOP concepts: abstraction, encapsulation, polymorphism",
}

var day2Rules = []rule{
	{anyCategory: []string{taxonomy.KeyLanguages}, dynamic: func(skills model.ExtractedSkills) []string {
		langs := skills[taxonomy.KeyLanguages]
		if len(langs) > 2 {
			langs = langs[:2]
		}
		return []string{fmt.Sprintf("Brush up on %s syntax and standard library", strings.Join(langs, " and "))}
	}},
}

var day3Base = []string{
	"Solve 10 easy array and string problems",
	"Practice stack and queue problems",
	"Study time complexity analysis (Big-O)",
}

var day3Rules = []rule{
	{anyKeyword: []string{"DSA"}, items: []string{
		"Solve 5 medium problems on hashing and two-pointers",
	}},
}

var day4Base = []string{
	"Practice tree problems: traversals, BST, LCA",
	"Solve 5 graph problems: BFS, DFS, shortest path",
	"Practice 3 dynamic programming problems",
}

var day4Rules = []rule{
	{anyKeyword: []string{"SQL"}, items: []string{
		"Write 10 SQL queries: joins, group by, subqueries",
	}},
}

var day5Base = []string{
	"Prepare project walkthroughs (2 projects, 5 min each)",
	"Align resume bullet points with JD keywords",
	"Review system design basics: load balancing, caching, databases",
}

var day5Rules = []rule{
	{anyKeyword: []string{"React"}, items: []string{
		"Revise React: hooks, state management, rendering optimization",
	}},
	{anyKeyword: []string{"Node.js"}, items: []string{
		"Revise Node.js: event loop, streams, middleware patterns",
	}},
	{anyCategory: []string{taxonomy.KeyCloud}, items: []string{
		"Review your deployment setup and explain it clearly",
	}},
}

var day6Base = []string{
	"Do 1 full mock interview (45 min, timed)",
	"Practice behavioral questions (STAR format)",
	`Prepare "Why this company?" and "Why this role?" answers`,
}

var day6Rules = []rule{
	{anyCategory: []string{taxonomy.KeyTesting}, items: []string{
		"Review testing concepts: unit vs integration vs e2e",
	}},
	{anyKeyword: []string{"Docker", "Kubernetes"}, items: []string{
		"Be ready to explain containerization and orchestration",
	}},
}

var day7Base = []string{
	"Revise weak areas identified during the week",
	"Do a quick aptitude mock (30 min)",
	"Re-read your resume and project notes",
	"Ensure all documents (resume, ID, certificates) are ready",
	"Get proper rest before the interview",
}

// GeneratePlan derives the 7-day study plan from the extraction. Exactly 7
// days are always produced. Day 5 interleaves project/resume work with
// stack-specific revision; day 7 is a fixed revision day with no
// conditionals.
func GeneratePlan(skills model.ExtractedSkills) []model.DayPlan {
	return []model.DayPlan{
		{Day: "Day 1", Label: "Basics + Core CS (Part 1)", Tasks: applyRules(day1Base, day1Rules, skills)},
		{Day: "Day 2", Label: "Basics + Core CS (Part 2)", Tasks: applyRules(day2Base, day2Rules, skills)},
		{Day: "Day 3", Label: "DSA + Coding (Part 1)", Tasks: applyRules(day3Base, day3Rules, skills)},
		{Day: "Day 4", Label: "DSA + Coding (Part 2)", Tasks: applyRules(day4Base, day4Rules, skills)},
		{Day: "Day 5", Label: "Project + Resume Alignment", Tasks: applyRules(day5Base, day5Rules, skills)},
		{Day: "Day 6", Label: "Mock Interview + Behavioral", Tasks: applyRules(day6Base, day6Rules, skills)},
		{Day: "Day 7", Label: "Revision + Final Prep", Tasks: applyRules(day7Base, nil, skills)},
	}
}
