package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiresphere/hiresphere/internal/models"
)

// Register walks the user through account creation and signs them in.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	roleStr, err := GetSimpleText(a.reader, "Role (jobseeker/employer)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(strings.ToLower(strings.TrimSpace(roleStr)))
	if !role.Valid() {
		fmt.Fprintln(a.out, "Role must be jobseeker or employer")
		return nil
	}

	profile := models.NewAccount{Name: name, Email: email, Role: role}
	if role == models.RoleEmployer {
		if profile.Company, err = GetSimpleText(a.reader, "Company", a.out); err != nil {
			return err
		}
	} else {
		if profile.Title, err = GetSimpleText(a.reader, "Professional title", a.out); err != nil {
			return err
		}
		if profile.Skills, err = GetList(a.reader, "Skills", a.out); err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	acct, err := a.ids.Register(ctx, profile, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Account created. You are logged in as %s.\n", acct.Name)
	return nil
}

// Login prompts for credentials and establishes a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	acct, err := a.ids.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", acct.Name)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.ids.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "You've been logged out.")
	return nil
}

// Profile prints the current account.
func (a *App) Profile(ctx context.Context) error {
	user := a.ids.CurrentSession()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> — %s\n", user.Name, user.Email, user.Role)
	if user.Company != "" {
		fmt.Fprintf(a.out, "Company: %s\n", user.Company)
	}
	if user.Title != "" {
		fmt.Fprintf(a.out, "Title: %s\n", user.Title)
	}
	if len(user.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(user.Skills, ", "))
	}
	if user.About != "" {
		fmt.Fprintf(a.out, "About: %s\n", user.About)
	}
	return nil
}

// EditProfile updates selected profile fields. Empty input keeps the
// current value; email and role cannot be changed.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.ids.CurrentSession()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	update := models.ProfileUpdate{}

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]", user.Name), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		update.Name = &name
	}

	if user.Role == models.RoleEmployer {
		company, err := GetSimpleText(a.reader, fmt.Sprintf("Company [%s]", user.Company), a.out)
		if err != nil {
			return err
		}
		if company != "" {
			update.Company = &company
		}
	} else {
		title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", user.Title), a.out)
		if err != nil {
			return err
		}
		if title != "" {
			update.Title = &title
		}
		skills, err := GetList(a.reader, "Skills", a.out)
		if err != nil {
			return err
		}
		if len(skills) > 0 {
			update.Skills = &skills
		}
	}

	about, err := GetMultiline(a.reader, "About you", a.out)
	if err != nil {
		return err
	}
	if about != "" {
		update.About = &about
	}

	if _, err := a.ids.UpdateProfile(ctx, update); err != nil {
		fmt.Fprintf(a.out, "Update failed: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
