package planner

import (
	"Gamehub/models"
	"Gamehub/utils"
	"context"
	"fmt"
	"time"
)

// SignupInput is one selected game on the daily signup form
type SignupInput struct {
	GameID     string `json:"gameId"`
	Preference int    `json:"preference"` // 0 means the default
	Notes      string `json:"notes"`
}

// AddSignups records userID's wish to play the selected games on day.
// A user signs up for a game at most once per day. Unknown games are skipped.
func (s *Service) AddSignups(ctx context.Context, userID string, day time.Time, inputs []SignupInput) ([]models.GameSignup, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: select at least one game", utils.ErrValidation)
	}
	for i := range inputs {
		if inputs[i].Preference == 0 {
			inputs[i].Preference = models.DefaultPreference
		}
		if !models.ValidPreference(inputs[i].Preference) {
			return nil, fmt.Errorf("%w: preference must be between %d and %d",
				utils.ErrValidation, models.MinPreference, models.MaxPreference)
		}
	}

	now := s.now()
	signupDate := utils.StartOfDay(day.In(s.loc))
	if utils.SameDay(day, now, s.loc) {
		signupDate = now
	}

	var created []models.GameSignup
	_, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		user, err := s.requireUser(snap, userID)
		if err != nil {
			return err
		}
		for _, in := range inputs {
			game := models.FindGame(snap.Games, in.GameID)
			if game == nil {
				continue
			}
			if hasSignup(snap.DailySignups, userID, in.GameID, signupDate, s.loc) {
				return fmt.Errorf("%w: already signed up for %s on %s",
					utils.ErrConflict, game.Name, utils.FormatDay(signupDate.In(s.loc)))
			}
			signup := models.GameSignup{
				ID:         s.newID(),
				UserID:     userID,
				UserName:   user.Name,
				GameID:     game.ID,
				GameName:   game.Name,
				SignupDate: signupDate,
				Preference: in.Preference,
				Notes:      in.Notes,
				CreatedAt:  now,
			}
			snap.DailySignups = append(snap.DailySignups, signup)
			created = append(created, signup)
		}
		if len(created) == 0 {
			return fmt.Errorf("%w: none of the selected games exist", utils.ErrValidation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func hasSignup(signups []models.GameSignup, userID, gameID string, day time.Time, loc *time.Location) bool {
	for _, s := range signups {
		if s.UserID == userID && s.GameID == gameID && utils.SameDay(s.SignupDate, day, loc) {
			return true
		}
	}
	return false
}

// ListSignups returns the signups made for day
func (s *Service) ListSignups(ctx context.Context, day time.Time) []models.GameSignup {
	snap := s.Snapshot(ctx)
	out := make([]models.GameSignup, 0)
	for _, signup := range snap.DailySignups {
		if utils.SameDay(signup.SignupDate, day, s.loc) {
			out = append(out, signup)
		}
	}
	return out
}
