package planner

import (
	"Gamehub/models"
	"Gamehub/utils"
	"context"
	"fmt"
	"strings"
)

// Login finds the user called name or registers a new one.
// created tells which of the two happened.
func (s *Service) Login(ctx context.Context, name string) (user models.User, created bool, err error) {
	name = strings.TrimSpace(name)
	if err := utils.RequireNonEmpty("name", name); err != nil {
		return models.User{}, false, err
	}

	_, err = s.mutate(ctx, func(snap *models.Snapshot) error {
		if u := snap.FindUserByName(name); u != nil {
			user = *u
			return errUnchanged
		}
		user = models.User{
			ID:                  s.newID(),
			Name:                name,
			OwnedGames:          []string{},
			GamePreferences:     []models.GamePreference{},
			WillingToJoinOthers: true,
		}
		snap.Users = append(snap.Users, user)
		created = true
		return nil
	})
	if err != nil {
		return models.User{}, false, err
	}
	return user, created, nil
}

// GetUser looks a user up by name
func (s *Service) GetUser(ctx context.Context, name string) (models.User, error) {
	snap := s.Snapshot(ctx)
	u := snap.FindUserByName(name)
	if u == nil {
		return models.User{}, fmt.Errorf("%w: user %s", utils.ErrNotFound, name)
	}
	return *u, nil
}

// SaveUser updates the user with the same id or registers a new one.
// Names are unique.
func (s *Service) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	if err := utils.RequireNonEmpty("name", user.Name); err != nil {
		return models.User{}, err
	}
	for _, p := range user.GamePreferences {
		if !models.ValidPreference(p.Preference) {
			return models.User{}, fmt.Errorf("%w: preference for %s must be between %d and %d",
				utils.ErrValidation, p.GameID, models.MinPreference, models.MaxPreference)
		}
	}
	if user.OwnedGames == nil {
		user.OwnedGames = []string{}
	}
	if user.GamePreferences == nil {
		user.GamePreferences = []models.GamePreference{}
	}

	_, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		other := snap.FindUserByName(user.Name)
		if existing := snap.FindUser(user.ID); user.ID != "" && existing != nil {
			if other != nil && other.ID != user.ID {
				return fmt.Errorf("%w: username %s already exists", utils.ErrConflict, user.Name)
			}
			*existing = user
			return nil
		}
		if other != nil {
			return fmt.Errorf("%w: username %s already exists", utils.ErrConflict, user.Name)
		}
		if user.ID == "" {
			user.ID = s.newID()
		}
		snap.Users = append(snap.Users, user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
