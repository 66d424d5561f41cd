package followers

// mapTranslator backs tests with an in-memory catalog so the engine
// stays decoupled from the embedded locale files.
type mapTranslator map[string]string

func (m mapTranslator) Message(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

func testMessages() mapTranslator {
	return mapTranslator{
		"followers.headline_own_single":   "You have 1 follower.",
		"followers.headline_own_plural":   "You have {count} followers.",
		"followers.headline_other_single": "{username} has 1 follower.",
		"followers.headline_other_plural": "{username} has {count} followers.",
		"followers.empty_own":             "You have no followers.",
		"followers.empty_other":           "{username} has no followers.",
		"followers.posts_single":          "1 post",
		"followers.posts_plural":          "{count} posts",
		"followers.threads_single":        "1 thread",
		"followers.threads_plural":        "{count} threads",
		"followers.followers_single":      "1 follower",
		"followers.followers_plural":      "{count} followers",
		"followers.joined_on":             "Joined on {date}",
	}
}
