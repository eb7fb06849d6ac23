package utils

import (
	"log"

	"greenfield-bot/utils/database"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// MemberHasRoleKey reports whether the member holds any of the guild roles
// bound to the given symbolic keys in project_roles. Unconfigured keys are
// skipped.
func MemberHasRoleKey(db *sqlx.DB, member *discordgo.Member, keys []string) bool {
	if member == nil {
		return false
	}
	for _, key := range keys {
		roleID, ok, err := database.GetProjectRoleID(db, key)
		if err != nil {
			log.Printf("Failed to resolve role key %s: %v", key, err)
			continue
		}
		if !ok {
			continue
		}
		for _, r := range member.Roles {
			if r == roleID {
				return true
			}
		}
	}
	return false
}

// MemberHasAnyRole reports whether the member holds any of the given role IDs.
func MemberHasAnyRole(member *discordgo.Member, roleIDs []string) bool {
	if member == nil {
		return false
	}
	for _, want := range roleIDs {
		if want == "" {
			continue
		}
		for _, r := range member.Roles {
			if r == want {
				return true
			}
		}
	}
	return false
}
