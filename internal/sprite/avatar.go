package sprite

import (
	"fmt"
	"strings"
)

// Avatar is a selectable player character.
type Avatar struct {
	Name   string
	Sprite string
}

var avatars = []Avatar{
	{Name: "Boy", Sprite: CharBoy},
	{Name: "Cat Girl", Sprite: CharCatGirl},
	{Name: "Horn Girl", Sprite: CharHornGirl},
	{Name: "Pink Girl", Sprite: CharPinkGirl},
	{Name: "Princess", Sprite: CharPrincess},
}

// Avatars returns the avatar choices in display order.
func Avatars() []Avatar {
	out := make([]Avatar, len(avatars))
	copy(out, avatars)
	return out
}

// DefaultAvatar is the character used when nothing was picked.
func DefaultAvatar() Avatar {
	return avatars[0]
}

// AvatarByName finds an avatar by display name, ignoring case and
// treating dashes as spaces ("cat-girl" matches "Cat Girl").
func AvatarByName(name string) (Avatar, error) {
	want := strings.ReplaceAll(strings.TrimSpace(name), "-", " ")
	for _, a := range avatars {
		if strings.EqualFold(a.Name, want) {
			return a, nil
		}
	}
	return Avatar{}, fmt.Errorf("sprite: unknown avatar %q", name)
}

// AvatarBySprite finds the avatar that uses the given sprite identifier.
func AvatarBySprite(id string) (Avatar, bool) {
	for _, a := range avatars {
		if a.Sprite == id {
			return a, true
		}
	}
	return Avatar{}, false
}
