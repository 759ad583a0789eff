package shell

import (
	"context"
	"strconv"

	"user-registry/internal/i18n"
	"user-registry/internal/service"
)

func (s *Session) register(ctx context.Context) error {
	fullName, err := s.prompt(i18n.PromptFullName)
	if err != nil {
		return err
	}
	username, err := s.prompt(i18n.PromptUsername)
	if err != nil {
		return err
	}

	if err := s.users.CheckIdentity(ctx, fullName, username); err != nil {
		s.report(err)
		return nil
	}

	var sex string
	for {
		if sex, err = s.prompt(i18n.PromptSex); err != nil {
			return err
		}
		if _, err := service.ParseSex(sex); err == nil {
			break
		}
		s.print(i18n.InvalidSex)
	}

	var age string
	for {
		if age, err = s.prompt(i18n.PromptAge); err != nil {
			return err
		}
		if _, err := service.ParseAge(age); err == nil {
			break
		}
		s.print(i18n.InvalidAge)
	}

	user, err := s.users.Register(ctx, service.RegisterRequest{
		FullName: fullName,
		Username: username,
		Sex:      sex,
		Age:      age,
	})
	if err != nil {
		s.report(err)
		return nil
	}

	s.logger.WithField("username", user.Username).Info("user registered")
	s.print(i18n.RegisterSuccess)
	return nil
}

func (s *Session) login(ctx context.Context) error {
	username, err := s.prompt(i18n.LoginPrompt)
	if err != nil {
		return err
	}

	user, err := s.users.Authenticate(ctx, username)
	if err != nil {
		s.report(err)
		return nil
	}

	s.logger.WithField("username", user.Username).Info("user logged in")
	s.print(i18n.LoginSuccess, user.FullName)
	return nil
}

func (s *Session) list(ctx context.Context) error {
	users, err := s.users.List(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(users) == 0 {
		s.print(i18n.ListEmpty)
		return nil
	}

	s.print(i18n.ListHeader)
	for i, u := range users {
		s.print(i18n.ListEntry, strconv.Itoa(i+1), u.FullName, u.Username, string(u.Sex), strconv.Itoa(u.Age))
	}
	return nil
}

func (s *Session) delete(ctx context.Context) error {
	username, err := s.prompt(i18n.DeletePrompt)
	if err != nil {
		return err
	}

	if _, err := s.users.Delete(ctx, username); err != nil {
		s.report(err)
		return nil
	}

	s.logger.WithField("username", username).Info("user deleted")
	s.print(i18n.DeleteSuccess, username)
	return nil
}
