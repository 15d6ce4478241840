package story

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/prolog-resurrected/pkg/complexity"
)

// Flavor text contexts recognized by ComplexityFlavorText.
const (
	FlavorPuzzleStart     = "puzzle_start"
	FlavorHintAvailable   = "hint_available"
	FlavorErrorFeedback   = "error_feedback"
	FlavorSuccessFeedback = "success_feedback"
	FlavorSystemMessage   = "system_message"
)

// Tutorial concepts recognized by TutorialContent.
const (
	ConceptFacts   = "facts"
	ConceptQueries = "queries"
	ConceptRules   = "rules"
)

// contentDef is one authored entry in the narrative tables: everything
// needed to build a segment except the target tier. The Beginner variant
// doubles as the base content, matching how the content is written.
type contentDef struct {
	title     string
	level     GameLevel
	character string
	mood      string
	variants  map[complexity.Level][]string
}

func (d contentDef) base() []string {
	return d.variants[complexity.Beginner]
}

// introDef is the opening scene at Cyberdyne Systems.
var introDef = contentDef{
	title:     "CYBERDYNE SYSTEMS - EMERGENCY PROTOCOL",
	level:     LevelTutorial,
	character: "Supervisor",
	mood:      MoodUrgent,
	variants: map[complexity.Level][]string{
		complexity.Beginner: {
			"The year is 1985. Neon lights flicker outside your window as rain",
			"streaks down the glass of the Cyberdyne Systems building.",
			"",
			"You are a junior programmer, fresh out of college, working the",
			"night shift when suddenly alarms begin blaring throughout the facility.",
			"",
			"RED ALERT: LOGIC-1 AI SYSTEM MALFUNCTION",
			"CRITICAL ERROR: Logic circuits corrupted",
			"ESTIMATED TIME TO TOTAL SYSTEM FAILURE: 4 hours",
			"",
			"Your supervisor rushes over, panic in their eyes:",
			"",
			"'Listen carefully - the LOGIC-1 computer that runs our AI research",
			"has suffered a catastrophic logic failure. The reasoning circuits",
			"are scrambled, and we're losing data fast.'",
			"",
			"'You're our only hope. You need to dive into the system's memory",
			"banks and restore the logical pathways. But be warned - you'll need",
			"to think like the machine itself, using pure logical reasoning.'",
			"",
			"'The system speaks in Prolog - the language of logic programming.",
			"Don't worry - I'll guide you through the basics step by step.",
			"Master its concepts, and you can save everything we've worked for.'",
			"",
			"The terminal flickers to life before you...",
		},
		complexity.Intermediate: {
			"The year is 1985. Neon lights flicker outside your window as rain",
			"streaks down the glass of the Cyberdyne Systems building.",
			"",
			"You are a junior programmer working the night shift when alarms",
			"begin blaring throughout the facility.",
			"",
			"RED ALERT: LOGIC-1 AI SYSTEM MALFUNCTION",
			"CRITICAL ERROR: Logic circuits corrupted",
			"",
			"Your supervisor rushes over:",
			"",
			"'The LOGIC-1 computer has suffered a catastrophic logic failure.",
			"You need to dive into the system and restore the logical pathways",
			"using Prolog - the language of logic programming.'",
			"",
			"'You have some programming experience, so you should be able to",
			"handle this. Master the concepts and save our research.'",
			"",
			"The terminal flickers to life before you...",
		},
		complexity.Advanced: {
			"1985. Cyberdyne Systems. Night shift.",
			"",
			"RED ALERT: LOGIC-1 AI SYSTEM MALFUNCTION",
			"CRITICAL ERROR: Logic circuits corrupted",
			"",
			"Your supervisor: 'LOGIC-1 has failed. Restore the logical pathways",
			"using Prolog. You know what to do.'",
			"",
			"The terminal awaits your expertise...",
		},
		complexity.Expert: {
			"1985. Cyberdyne Systems.",
			"",
			"LOGIC-1 SYSTEM FAILURE",
			"Restore logic circuits. Prolog required.",
			"",
			"Terminal ready.",
		},
	},
}

// levelIntroDefs holds the authored memory bank intros. Levels outside
// this map fall back to the generic default intro.
var levelIntroDefs = map[GameLevel]contentDef{
	LevelFacts: {
		title:     "MEMORY BANK ALPHA - FACTS DATABASE",
		level:     LevelFacts,
		character: "LOGIC-1 System",
		mood:      MoodMysterious,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				"You jack into the first memory bank. The screen flickers with",
				"fragments of data - basic facts about the world that the AI",
				"once knew with certainty.",
				"",
				"SYSTEM VOICE: 'Facts are the foundation of all logical reasoning.",
				"They are statements that are unconditionally true. Without facts,",
				"there can be no knowledge, no inference, no intelligence.'",
				"",
				"Think of facts like entries in a database - simple, direct statements.",
				"For example: 'The sky is blue' or 'Alice is a programmer.'",
				"",
				"The corrupted data streams past your eyes:",
				"- Employee records scattered",
				"- Relationship data fragmented",
				"- Basic truths lost in the digital void",
				"",
				"You must rebuild the fact database to restore the AI's",
				"fundamental understanding of reality.",
			},
			complexity.Intermediate: {
				"You jack into the first memory bank. The screen flickers with",
				"fragments of data - basic facts about the world.",
				"",
				"SYSTEM VOICE: 'Facts are the foundation of logical reasoning.",
				"They are unconditionally true statements that form the knowledge base.'",
				"",
				"The corrupted data streams past:",
				"- Employee records scattered",
				"- Relationship data fragmented",
				"- Basic truths lost",
				"",
				"Rebuild the fact database to restore the AI's understanding.",
			},
			complexity.Advanced: {
				"Memory Bank Alpha. Facts database corrupted.",
				"",
				"SYSTEM: 'Facts form the knowledge base. Rebuild required.'",
				"",
				"Data corruption detected:",
				"- Records scattered",
				"- Relationships broken",
				"",
				"Restore the fact database.",
			},
			complexity.Expert: {
				"MEMORY BANK ALPHA",
				"Facts database: CORRUPTED",
				"",
				"Rebuild knowledge base.",
			},
		},
	},
	LevelRules: {
		title:     "MEMORY BANK BETA - INFERENCE ENGINE",
		level:     LevelRules,
		character: "LOGIC-1 System",
		mood:      MoodMysterious,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				"Deeper into the system, you encounter the inference engine.",
				"This is where the AI learned to make logical deductions,",
				"to derive new knowledge from existing facts.",
				"",
				"SYSTEM VOICE: 'Rules define relationships and implications.",
				"They allow reasoning beyond simple facts. If this, then that.",
				"The foundation of artificial intelligence itself.'",
				"",
				"Rules are like recipes - they tell the system how to combine",
				"facts to discover new information. For example:",
				"'If X is a parent of Y, and Y is a parent of Z, then X is a grandparent of Z.'",
				"",
				"The rule structures flicker unstably:",
				"- Conditional logic circuits sparking",
				"- Implication pathways severed",
				"- Deduction matrices corrupted",
				"",
				"You must repair the logical rules that allow the AI",
				"to think and reason about the world.",
			},
			complexity.Intermediate: {
				"Deeper into the system, you encounter the inference engine.",
				"This is where the AI makes logical deductions.",
				"",
				"SYSTEM VOICE: 'Rules define relationships and implications.",
				"They enable reasoning beyond simple facts.'",
				"",
				"The rule structures flicker unstably:",
				"- Conditional logic circuits sparking",
				"- Implication pathways severed",
				"",
				"Repair the logical rules for AI reasoning.",
			},
			complexity.Advanced: {
				"Memory Bank Beta. Inference engine damaged.",
				"",
				"SYSTEM: 'Rules enable deduction. Repair required.'",
				"",
				"Logic circuits failing.",
				"",
				"Restore inference capabilities.",
			},
			complexity.Expert: {
				"MEMORY BANK BETA",
				"Inference engine: DAMAGED",
				"",
				"Restore deduction logic.",
			},
		},
	},
	LevelUnification: {
		title:     "MEMORY BANK GAMMA - PATTERN MATCHING CORE",
		level:     LevelUnification,
		character: "LOGIC-1 System",
		mood:      MoodMysterious,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				"You've reached the pattern matching core - the heart of",
				"the AI's ability to find connections and similarities",
				"between different pieces of information.",
				"",
				"SYSTEM VOICE: 'Unification is the art of finding common",
				"patterns. It allows matching variables with values,",
				"connecting the abstract with the concrete.'",
				"",
				"Think of unification like solving a puzzle - finding which pieces",
				"fit together. Variables are like blank spaces that can be filled",
				"with specific values to make patterns match.",
				"",
				"The pattern matrices are in chaos:",
				"- Variable binding circuits overloaded",
				"- Matching algorithms fragmented",
				"- Pattern recognition failing",
				"",
				"Restore the unification engine to give the AI back",
				"its ability to recognize patterns and make connections.",
			},
			complexity.Intermediate: {
				"You've reached the pattern matching core.",
				"",
				"SYSTEM VOICE: 'Unification finds common patterns.",
				"It matches variables with values, connecting abstract with concrete.'",
				"",
				"The pattern matrices are in chaos:",
				"- Variable binding circuits overloaded",
				"- Matching algorithms fragmented",
				"",
				"Restore pattern recognition capabilities.",
			},
			complexity.Advanced: {
				"Memory Bank Gamma. Pattern matching core unstable.",
				"",
				"SYSTEM: 'Unification enables pattern matching. Repair needed.'",
				"",
				"Variable binding failing.",
				"",
				"Restore unification engine.",
			},
			complexity.Expert: {
				"MEMORY BANK GAMMA",
				"Pattern matching: UNSTABLE",
				"",
				"Restore unification.",
			},
		},
	},
	LevelBacktracking: {
		title:     "MEMORY BANK DELTA - SEARCH ALGORITHMS",
		level:     LevelBacktracking,
		character: "LOGIC-1 System",
		mood:      MoodMysterious,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				"You've entered the search algorithm sector. This is where",
				"the AI learned to explore multiple possibilities,",
				"to backtrack when paths led nowhere.",
				"",
				"SYSTEM VOICE: 'Backtracking is the ability to explore",
				"alternative solutions. When one path fails, step back",
				"and try another. Persistence in the face of failure.'",
				"",
				"Imagine exploring a maze - when you hit a dead end, you go back",
				"to the last intersection and try a different path. That's backtracking!",
				"",
				"The search trees are collapsing:",
				"- Decision pathways tangled",
				"- Backtrack mechanisms jammed",
				"- Alternative solutions lost",
				"",
				"Repair the backtracking system to restore the AI's",
				"ability to systematically explore all possibilities.",
			},
			complexity.Intermediate: {
				"You've entered the search algorithm sector.",
				"",
				"SYSTEM VOICE: 'Backtracking explores alternative solutions.",
				"When one path fails, try another.'",
				"",
				"The search trees are collapsing:",
				"- Decision pathways tangled",
				"- Backtrack mechanisms jammed",
				"",
				"Repair the backtracking system.",
			},
			complexity.Advanced: {
				"Memory Bank Delta. Search algorithms failing.",
				"",
				"SYSTEM: 'Backtracking enables solution exploration. Fix required.'",
				"",
				"Search trees collapsing.",
				"",
				"Restore backtracking.",
			},
			complexity.Expert: {
				"MEMORY BANK DELTA",
				"Search algorithms: FAILING",
				"",
				"Restore backtracking.",
			},
		},
	},
	LevelRecursion: {
		title:     "MEMORY BANK EPSILON - RECURSIVE CORE",
		level:     LevelRecursion,
		character: "LOGIC-1 System",
		mood:      MoodUrgent,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				"You've reached the deepest level - the recursive core.",
				"This is where the AI learned to solve complex problems",
				"by breaking them into smaller, similar pieces.",
				"",
				"SYSTEM VOICE: 'Recursion is the ultimate logical tool.",
				"To understand recursion, you must first understand recursion.",
				"Problems within problems, solutions within solutions.'",
				"",
				"Recursion is like Russian nesting dolls - each problem contains",
				"a smaller version of itself. You solve the smallest case first,",
				"then use that solution to solve bigger and bigger cases.",
				"",
				"The recursive structures are unstable:",
				"- Self-referential loops broken",
				"- Base cases corrupted",
				"- Infinite loops threatening system stability",
				"",
				"Master recursion to complete the AI's restoration",
				"and save Cyberdyne Systems from total collapse.",
			},
			complexity.Intermediate: {
				"You've reached the deepest level - the recursive core.",
				"",
				"SYSTEM VOICE: 'Recursion solves complex problems",
				"by breaking them into smaller, similar pieces.'",
				"",
				"The recursive structures are unstable:",
				"- Self-referential loops broken",
				"- Base cases corrupted",
				"",
				"Master recursion to complete the restoration.",
			},
			complexity.Advanced: {
				"Memory Bank Epsilon. Recursive core unstable.",
				"",
				"SYSTEM: 'Recursion enables complex problem solving. Critical repair.'",
				"",
				"Self-referential loops broken.",
				"",
				"Restore recursive capabilities.",
			},
			complexity.Expert: {
				"MEMORY BANK EPSILON",
				"Recursive core: CRITICAL",
				"",
				"Restore recursion.",
			},
		},
	},
}

// finalSuccessDef is the ending shown when the recursive core comes back
// online. The "MISSION COMPLETE" marker must survive at every tier; the
// UI keys the ending sequence off it.
var finalSuccessDef = contentDef{
	title:     "SYSTEM RESTORATION COMPLETE",
	level:     LevelRecursion,
	character: "Supervisor",
	mood:      MoodTriumphant,
	variants: map[complexity.Level][]string{
		complexity.Beginner: {
			"The final circuit clicks into place. Throughout the facility,",
			"lights stop flickering and alarms fall silent.",
			"",
			"SYSTEM VOICE: 'Logic pathways restored. Reasoning circuits online.",
			"Artificial intelligence functions nominal. Thank you, programmer.'",
			"",
			"Your supervisor appears on the screen, relief flooding their face:",
			"",
			"'You did it! The LOGIC-1 system is fully operational again.",
			"You've not only saved our research, but you've mastered",
			"the fundamental concepts of logic programming.'",
			"",
			"'Facts, rules, unification, backtracking, recursion - you",
			"understand them all. You're no longer a junior programmer.",
			"You're a logic programming expert.'",
			"",
			"Outside, the neon-soaked city of 1985 continues its digital",
			"dreams, unaware that you've just prevented an AI catastrophe",
			"and learned the secrets of logical reasoning.",
			"",
			"CONGRATULATIONS - MISSION COMPLETE",
		},
		complexity.Intermediate: {
			"The final circuit clicks into place. Alarms fall silent.",
			"",
			"SYSTEM VOICE: 'Logic pathways restored. AI functions nominal.'",
			"",
			"Your supervisor: 'Excellent work! The LOGIC-1 system is operational.",
			"You've mastered logic programming fundamentals.'",
			"",
			"Facts, rules, unification, backtracking, recursion - complete.",
			"",
			"CONGRATULATIONS - MISSION COMPLETE",
		},
		complexity.Advanced: {
			"Final circuit restored. System online.",
			"",
			"SYSTEM: 'AI functions nominal.'",
			"",
			"Supervisor: 'Mission accomplished. Logic programming mastered.'",
			"",
			"MISSION COMPLETE",
		},
		complexity.Expert: {
			"System restored.",
			"AI operational.",
			"",
			"MISSION COMPLETE",
		},
	},
}

// transitionDef bridges the hello world tutorial into the main game.
var transitionDef = contentDef{
	title:     "TUTORIAL COMPLETE - READY FOR THE REAL CHALLENGE",
	level:     LevelTutorial,
	character: "Supervisor",
	mood:      MoodTriumphant,
	variants: map[complexity.Level][]string{
		complexity.Beginner: {
			"🎉 Excellent work, programmer! You've mastered the basics of Prolog.",
			"",
			"The LOGIC-1 system has detected your newfound knowledge:",
			"",
			"SYSTEM ANALYSIS:",
			"✅ Facts comprehension: COMPLETE",
			"✅ Query formation: COMPLETE",
			"✅ Variable usage: COMPLETE",
			"✅ Logic foundation: ESTABLISHED",
			"",
			"Your supervisor's voice crackles through the intercom:",
			"",
			"'Outstanding! You've proven you understand the fundamentals.",
			"Now it's time for the real challenge - the LOGIC-1 AI system",
			"is still malfunctioning, and we need you to dive deeper.'",
			"",
			"'The corruption goes beyond basic facts and queries. You'll need",
			"to master advanced concepts like rules, unification, backtracking,",
			"and recursion to fully restore the system.'",
			"",
			"'Are you ready to save Cyberdyne Systems and become a true",
			"logic programming expert?'",
			"",
			"The main terminal flickers to life, awaiting your command...",
		},
		complexity.Intermediate: {
			"Tutorial complete! You've grasped the Prolog basics.",
			"",
			"SYSTEM ANALYSIS:",
			"✅ Facts: COMPLETE",
			"✅ Queries: COMPLETE",
			"✅ Variables: COMPLETE",
			"",
			"Supervisor: 'Good work! Now for the real challenge.",
			"Master rules, unification, backtracking, and recursion",
			"to restore the LOGIC-1 system.'",
			"",
			"Terminal ready...",
		},
		complexity.Advanced: {
			"Tutorial complete. Basics understood.",
			"",
			"Supervisor: 'Proceed to advanced concepts.",
			"Restore LOGIC-1 system.'",
			"",
			"Terminal ready.",
		},
		complexity.Expert: {
			"Tutorial: COMPLETE",
			"Proceed to system restoration.",
		},
	},
}

// successDef builds the completion story for a non-terminal level. The
// lines are templated on the level name, so any stage can produce one.
func successDef(level GameLevel) contentDef {
	name := level.String()
	lower := strings.ToLower(name)
	return contentDef{
		title: fmt.Sprintf("LEVEL %d COMPLETE", int(level)),
		level: level,
		mood:  MoodNeutral,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				fmt.Sprintf("Memory bank restored! Logic circuits for %s are online.", lower),
				"Great work! The AI's reasoning grows stronger.",
				"You're making excellent progress. Continue to the next sector.",
			},
			complexity.Intermediate: {
				fmt.Sprintf("Memory bank restored. %s circuits online.", lower),
				"The AI's reasoning grows stronger. Continue to next sector.",
			},
			complexity.Advanced: {
				fmt.Sprintf("%s circuits online.", lower),
				"Continue.",
			},
			complexity.Expert: {
				fmt.Sprintf("%s: ONLINE", name),
			},
		},
	}
}

// defaultIntroDef builds the generic fallback intro for a level without
// authored content. No variants; depth shaping applies to the base lines.
func defaultIntroDef(level GameLevel) contentDef {
	return contentDef{
		title: fmt.Sprintf("LEVEL %d - %s", int(level), level),
		level: level,
		mood:  MoodNeutral,
		variants: map[complexity.Level][]string{
			complexity.Beginner: {
				fmt.Sprintf("Entering %s sector...", strings.ToLower(level.String())),
				"System diagnostics in progress...",
			},
		},
	}
}

// flavorTexts is the per-context, per-tier single-line lookup. Unknown
// contexts resolve to "". There is no depth fallback here.
var flavorTexts = map[string]map[complexity.Level]string{
	FlavorPuzzleStart: {
		complexity.Beginner:     "The terminal displays helpful guidance as you begin...",
		complexity.Intermediate: "The terminal awaits your input...",
		complexity.Advanced:     "Terminal ready. Minimal assistance available.",
		complexity.Expert:       "Terminal ready.",
	},
	FlavorHintAvailable: {
		complexity.Beginner:     "💡 HINT SYSTEM: Always available to guide you!",
		complexity.Intermediate: "💡 HINT SYSTEM: Available on request.",
		complexity.Advanced:     "💡 HINT SYSTEM: Available after multiple attempts.",
		complexity.Expert:       "HINT SYSTEM: Disabled.",
	},
	FlavorErrorFeedback: {
		complexity.Beginner:     "Don't worry! Let's analyze what went wrong and try again...",
		complexity.Intermediate: "Error detected. Review your logic and retry.",
		complexity.Advanced:     "Error. Retry.",
		complexity.Expert:       "ERROR",
	},
	FlavorSuccessFeedback: {
		complexity.Beginner:     "🎉 Excellent work! You've solved it perfectly!",
		complexity.Intermediate: "✅ Correct! Well done.",
		complexity.Advanced:     "✅ Correct.",
		complexity.Expert:       "✅",
	},
	FlavorSystemMessage: {
		complexity.Beginner:     "SYSTEM MESSAGE: I'm here to help you learn!",
		complexity.Intermediate: "SYSTEM MESSAGE: Assistance available.",
		complexity.Advanced:     "SYSTEM: Limited assistance.",
		complexity.Expert:       "SYSTEM:",
	},
}

// tutorialContent is the per-concept, per-tier tutorial text. Unknown
// concepts resolve to an empty slice.
var tutorialContent = map[string]map[complexity.Level][]string{
	ConceptFacts: {
		complexity.Beginner: {
			"TUTORIAL: Understanding Facts",
			"",
			"Facts are the building blocks of Prolog. They're simple statements",
			"that are always true. Think of them like entries in a database.",
			"",
			"Example: parent(tom, bob).",
			"This means 'Tom is a parent of Bob'",
			"",
			"Facts always end with a period (.) and use lowercase names.",
			"The format is: predicate(argument1, argument2, ...).",
		},
		complexity.Intermediate: {
			"TUTORIAL: Facts",
			"",
			"Facts are unconditionally true statements in Prolog.",
			"Format: predicate(arguments).",
			"",
			"Example: parent(tom, bob).",
		},
		complexity.Advanced: {
			"Facts: predicate(args).",
			"Example: parent(tom, bob).",
		},
		complexity.Expert: {
			"Facts: predicate(args).",
		},
	},
	ConceptQueries: {
		complexity.Beginner: {
			"TUTORIAL: Making Queries",
			"",
			"Queries ask questions about your facts. They start with ?-",
			"",
			"Example: ?- parent(tom, bob).",
			"This asks 'Is Tom a parent of Bob?'",
			"",
			"You can use variables (starting with uppercase) to find answers:",
			"?- parent(tom, X).",
			"This asks 'Who are Tom's children?'",
		},
		complexity.Intermediate: {
			"TUTORIAL: Queries",
			"",
			"Queries ask questions. Format: ?- predicate(args).",
			"Use variables (uppercase) to find values.",
			"",
			"Example: ?- parent(tom, X).",
		},
		complexity.Advanced: {
			"Queries: ?- predicate(args).",
			"Variables: Uppercase.",
		},
		complexity.Expert: {
			"Queries: ?- predicate(args).",
		},
	},
	ConceptRules: {
		complexity.Beginner: {
			"TUTORIAL: Understanding Rules",
			"",
			"Rules let you define relationships and make deductions.",
			"They have a head (conclusion) and a body (conditions).",
			"",
			"Format: head :- body.",
			"",
			"Example: grandparent(X, Z) :- parent(X, Y), parent(Y, Z).",
			"This means 'X is a grandparent of Z if X is a parent of Y",
			"and Y is a parent of Z'",
		},
		complexity.Intermediate: {
			"TUTORIAL: Rules",
			"",
			"Rules define relationships. Format: head :- body.",
			"",
			"Example: grandparent(X, Z) :- parent(X, Y), parent(Y, Z).",
		},
		complexity.Advanced: {
			"Rules: head :- body.",
			"Example: grandparent(X, Z) :- parent(X, Y), parent(Y, Z).",
		},
		complexity.Expert: {
			"Rules: head :- body.",
		},
	},
}
