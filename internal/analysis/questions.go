package analysis

import (
	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

const maxQuestions = 10

// questionBank maps a taxonomy keyword to its interview questions, in ask
// order. Keywords without an entry contribute nothing.
var questionBank = map[string][]string{
	"DSA": {
		"How would you optimize search in sorted data?",
		"Explain the difference between BFS and DFS with use cases.",
		"How do you detect a cycle in a linked list?",
		"What is the time complexity of merge sort and why?",
	},
	"OOP": {
		"Explain SOLID principles with real examples.",
		"What is the difference between composition and inheritance?",
		"How does polymorphism work at runtime?",
	},
	"DBMS": {
		"What is normalization? Explain up to 3NF.",
		"Explain ACID properties with a transaction example.",
	},
	"OS": {
		"Explain process vs thread and when to use each.",
		"What are deadlocks and how can they be prevented?",
	},
	"Networks": {
		"Explain the difference between TCP and UDP.",
		"What happens when you type a URL in a browser?",
	},
	"Java": {
		"Explain the Java memory model (heap vs stack).",
		"What are the differences between HashMap and ConcurrentHashMap?",
	},
	"Python": {
		"Explain Python's GIL and its impact on multithreading.",
		"What are decorators and how do you use them?",
	},
	"JavaScript": {
		"Explain closures with a practical example.",
		"What is the event loop in JavaScript?",
	},
	"TypeScript": {
		"What are generics in TypeScript and when would you use them?",
		"Explain the difference between interface and type.",
	},
	"React": {
		"Explain state management options in React.",
		"How does the virtual DOM work and why is it efficient?",
		"What are React hooks? Explain useEffect cleanup.",
	},
	"Next.js": {
		"What is the difference between SSR, SSG, and ISR in Next.js?",
		"How does file-based routing work in Next.js?",
	},
	"Node.js": {
		"Explain the Node.js event loop and non-blocking I/O.",
		"How do you handle errors in Express middleware?",
	},
	"SQL": {
		"Explain indexing and when it helps performance.",
		"Write a query to find the second highest salary.",
		"What are window functions? Give an example.",
	},
	"MongoDB": {
		"When would you choose MongoDB over a relational database?",
		"Explain the aggregation pipeline with an example.",
	},
	"PostgreSQL": {
		"What are the advantages of PostgreSQL over MySQL?",
		"Explain JSONB in PostgreSQL and when to use it.",
	},
	"Docker": {
		"What is the difference between a container and a VM?",
		"Explain multi-stage builds in Docker.",
	},
	"Kubernetes": {
		"What is a Pod in Kubernetes?",
		"Explain the difference between Deployment and StatefulSet.",
	},
	"AWS": {
		"Explain the difference between EC2, Lambda, and ECS.",
		"How would you design a scalable architecture on AWS?",
	},
	"REST": {
		"What are the key constraints of RESTful design?",
		"Explain idempotency in REST APIs.",
	},
	"GraphQL": {
		"What are the advantages of GraphQL over REST?",
		"Explain resolvers and schema stitching.",
	},
	"CI/CD": {
		"Describe your ideal CI/CD pipeline.",
		"How do you handle rollbacks in a deployment?",
	},
	"Linux": {
		"Explain file permissions in Linux.",
		"How would you troubleshoot a high-CPU process?",
	},
	"Selenium":   {"How do you handle dynamic elements in Selenium?"},
	"Cypress":    {"How does Cypress differ from Selenium in architecture?"},
	"Playwright": {"What are the advantages of Playwright over Cypress?"},
	"JUnit":      {"How do you write parameterized tests in JUnit?"},
	"PyTest":     {"Explain fixtures in PyTest and how they help."},
}

// genericQuestions fills any slots left after the keyword banks run dry.
var genericQuestions = []string{
	"Tell me about a challenging project you worked on.",
	"How do you approach debugging a complex issue?",
	"Explain a technical concept to a non-technical person.",
	"How do you prioritize tasks when working on multiple features?",
	"What is your approach to learning a new technology?",
}

// GenerateQuestions picks up to 10 unique questions: matched keywords are
// walked in extraction order, each keyword's bank in bank order, skipping
// duplicates, then the generic pool tops up whatever is left.
func GenerateQuestions(skills model.ExtractedSkills) []string {
	questions := make([]string, 0, maxQuestions)
	seen := make(map[string]bool)

	add := func(q string) bool {
		if seen[q] {
			return len(questions) < maxQuestions
		}
		seen[q] = true
		questions = append(questions, q)
		return len(questions) < maxQuestions
	}

	for _, kw := range taxonomy.MatchedKeywords(skills) {
		for _, q := range questionBank[kw] {
			if !add(q) {
				return questions
			}
		}
	}

	for _, q := range genericQuestions {
		if !add(q) {
			break
		}
	}

	return questions
}
