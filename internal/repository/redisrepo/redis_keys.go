package redisrepo

import "fmt"

const (
	USER_KEY               = "user:%s"              // <userID>
	USERNAME_KEY           = "username:%s"          // <username>
	USER_FOLLOWERS_KEY     = "followers:%s:%d:%d"   // <userID>:<limit>:<offset>
	USER_FOLLOWERS_PATTERN = "followers:%s:*"       // <userID>
)

func UserKey(userID string) string {
	return fmt.Sprintf(USER_KEY, userID)
}

func UsernameKey(username string) string {
	return fmt.Sprintf(USERNAME_KEY, username)
}

func UserFollowersKey(userID string, limit int, offset int) string {
	return fmt.Sprintf(USER_FOLLOWERS_KEY, userID, limit, offset)
}

func UserFollowersPattern(userID string) string {
	return fmt.Sprintf(USER_FOLLOWERS_PATTERN, userID)
}
