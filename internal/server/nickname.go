package server

import "math/rand/v2"

// Nickname word lists, barnyard flavored.
var (
	adjectives = []string{
		"Brave", "Clever", "Merry", "Sly", "Dusty",
		"Thrifty", "Gentle", "Stubborn", "Quiet", "Lively",
		"Crafty", "Dapper", "Mellow", "Bold", "Steady",
		"Shiny", "Charming", "Grumpy", "Sleepy", "Frosty",
	}

	nouns = []string{
		"Sheep", "Badger", "Heron", "Fox", "Otter",
		"Rabbit", "Raccoon", "Dachshund", "Penguin", "Moose",
		"Corgi", "Walleye", "Mallard", "Chipmunk", "Hamster",
		"Hedgehog", "Squirrel", "Beaver", "Loon", "Alpaca",
	}
)

// GenerateNickname picks a random adjective-noun pair.
func GenerateNickname() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return adj + " " + noun
}
