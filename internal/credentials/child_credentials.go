package credentials

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Word lists for generating kid-friendly usernames
var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "wise", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "flying", "gentle", "curious", "jazzy", "kindly",
	"lively", "merry", "noble", "perky", "quick", "royal", "snappy", "turbo",
}

var nouns = []string{
	"owl", "tiger", "eagle", "dolphin", "panda", "lion", "wolf", "bear",
	"fox", "hawk", "otter", "phoenix", "unicorn", "rocket", "ninja", "wizard",
	"knight", "pirate", "robot", "astronaut", "hero", "champion", "explorer", "ranger",
	"comet", "planet", "scientist", "reader", "poet", "inventor", "puzzler", "falcon",
}

const passwordChars = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

// maxAttempts bounds the random tries before a numeric suffix is used
const maxAttempts = 20

// Suggestion is a generated username and password for a new child
type Suggestion struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Suggest generates credentials whose username is not reported as taken
func Suggest(taken func(username string) bool) (Suggestion, error) {
	username, err := GenerateChildUsername()
	if err != nil {
		return Suggestion{}, err
	}
	for attempt := 1; taken(username); attempt++ {
		if attempt < maxAttempts {
			if username, err = GenerateChildUsername(); err != nil {
				return Suggestion{}, err
			}
			continue
		}
		n, err := randomInt(900)
		if err != nil {
			return Suggestion{}, err
		}
		username = username + strconv.Itoa(100+n)
	}

	password, err := GenerateChildPassword()
	if err != nil {
		return Suggestion{}, err
	}
	return Suggestion{Username: username, Password: password}, nil
}

// GenerateChildUsername generates a random username in the format "adjective-noun"
func GenerateChildUsername() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// GenerateChildPassword generates a random 4-character password. Look-alike
// characters (0/O, 1/l/I) are left out.
func GenerateChildPassword() (string, error) {
	password := make([]byte, 4)
	for i := range password {
		n, err := randomInt(len(passwordChars))
		if err != nil {
			return "", err
		}
		password[i] = passwordChars[n]
	}
	return string(password), nil
}

func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}
	n, err := randomInt(len(slice))
	if err != nil {
		return "", err
	}
	return slice[n], nil
}

func randomInt(max int) (int, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(num.Int64()), nil
}
