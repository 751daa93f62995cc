package nlp

// stopWords are removed after stemming. Beyond the usual English function
// words, the set carries journal-specific time words and generic verbs that
// dominate diary prose without carrying topical signal.
var stopWords = map[string]bool{
	// articles, demonstratives
	"the": true, "this": true, "that": true, "these": true, "those": true,
	"there": true, "here": true,

	// prepositions, conjunctions
	"about": true, "above": true, "across": true, "after": true, "again": true,
	"against": true, "along": true, "among": true, "and": true, "around": true,
	"because": true, "before": true, "behind": true, "below": true,
	"beneath": true, "beside": true, "between": true, "beyond": true,
	"but": true, "down": true, "during": true, "except": true, "for": true,
	"from": true, "into": true, "near": true, "not": true, "off": true,
	"onto": true, "out": true, "over": true, "past": true, "since": true,
	"through": true, "throughout": true, "toward": true, "under": true,
	"until": true, "upon": true, "with": true, "within": true, "without": true,

	// pronouns
	"you": true, "your": true, "yours": true, "yourself": true,
	"she": true, "her": true, "hers": true, "herself": true,
	"him": true, "his": true, "himself": true,
	"its": true, "itself": true,
	"our": true, "ours": true, "ourselves": true,
	"they": true, "them": true, "their": true, "theirs": true,
	"themselves": true, "myself": true,
	"who": true, "whom": true, "whose": true,
	"someone": true, "something": true, "anyone": true, "anything": true,
	"everyone": true, "everything": true, "nothing": true, "nobody": true,

	// auxiliaries, modals
	"was": true, "were": true, "are": true, "been": true, "being": true,
	"has": true, "have": true, "had": true, "having": true,
	"does": true, "did": true, "doing": true, "done": true,
	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "cannot": true, "may": true, "might": true,
	"must": true,

	// quantifiers
	"all": true, "any": true, "both": true, "each": true, "every": true,
	"few": true, "many": true, "much": true, "more": true, "most": true,
	"none": true, "only": true, "other": true, "own": true, "same": true,
	"several": true, "some": true, "such": true, "enough": true,
	"lot": true, "lots": true,

	// wh-words
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"why": true, "how": true,

	// filler adverbs
	"very": true, "too": true, "also": true, "just": true, "really": true,
	"quite": true, "rather": true, "almost": true, "always": true,
	"never": true, "often": true, "sometimes": true, "usually": true,
	"maybe": true, "perhaps": true, "still": true, "even": true, "ever": true,
	"yet": true, "then": true, "than": true, "now": true, "well": true,
	"like": true, "anyway": true, "actually": true, "basically": true,
	"kind": true, "sort": true, "bit": true,

	// journal time words
	"today": true, "yesterday": true, "tomorrow": true, "tonight": true,
	"morning": true, "afternoon": true, "evening": true, "night": true,
	"day": true, "days": true, "week": true, "month": true, "year": true,
	"time": true,

	// generic verbs common in diary prose
	"felt": true, "feel": true, "got": true, "get": true, "went": true,
	"going": true, "come": true, "came": true, "made": true, "make": true,
	"take": true, "took": true, "said": true, "say": true, "told": true,
	"tell": true, "think": true, "thought": true, "know": true, "knew": true,
	"want": true, "wanted": true, "see": true, "saw": true, "look": true,
	"thing": true, "things": true,
}
