package tokenizer

var stopwords = defaultStopwords()

func defaultStopwords() map[string]struct{} {
	english := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
		"what", "which", "who", "whom", "whose", "when", "where", "why", "how", "do", "does", "did", "doing", "done", "has", "have", "had", "having", "i", "me", "my", "we", "our", "you", "your", "he", "him", "his", "she", "her", "they", "them", "their", "there", "here", "all", "any", "both", "each", "few", "more", "most", "other", "some", "no", "nor", "not", "only", "also", "would", "could", "may", "might", "must", "shall", "let", "us", "am", "an", "one", "get", "got",
	}
	hindi := []string{
		"kya", "hai", "hain", "ka", "ki", "ke", "ko", "se", "me", "mein", "aur", "ya", "yeh", "ye", "woh", "wo", "vo", "koi", "kuch", "bhi", "to", "tha", "thi", "the", "hota", "hoti", "hote", "kaise", "kyun", "kyon", "kab", "kahan", "kaun", "kis", "kisko", "iska", "iski", "iske", "uska", "uski", "uske", "ek", "par", "pe", "liye", "wala", "wali", "wale", "hum", "tum", "aap", "mujhe", "batao", "bataiye", "samjhao", "samjhaiye", "matlab", "hoga", "hogi", "raha", "rahi", "rahe", "nahi", "nahin",
	}
	instructional := []string{
		"explain", "define", "summarize", "summarise", "describe", "tell", "give", "list", "write", "discuss", "elaborate", "mention", "state", "show", "briefly", "brief", "detail", "details", "detailed", "please", "short", "note", "notes", "answer", "question",
	}
	m := make(map[string]struct{}, len(english)+len(hindi)+len(instructional))
	for _, group := range [][]string{english, hindi, instructional} {
		for _, w := range group {
			m[w] = struct{}{}
		}
	}
	return m
}
