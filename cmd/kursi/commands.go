package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/AkkAshy/kursi-sub000/internal/client"
	"github.com/AkkAshy/kursi-sub000/internal/config"
	"github.com/AkkAshy/kursi-sub000/internal/credentials"
	"github.com/AkkAshy/kursi-sub000/internal/models"
	"github.com/AkkAshy/kursi-sub000/internal/store"
)

// errUsage — аргументы не разобраны; main печатает usage и выходит с кодом 2.
var errUsage = errors.New("bad usage")

type app struct {
	cfg    *config.Config
	creds  credentials.Store
	api    *client.Client
	stores *store.Stores
	log    *slog.Logger
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.stores.Auth.Logout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx, args[1:])
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "courses":
		return a.cmdCourses(ctx, args[1:])
	case "lessons":
		return a.cmdLessons(ctx, args[1:])
	case "leads":
		return a.cmdLeads(ctx, args[1:])
	case "subscription":
		return a.cmdSubscription(ctx, args[1:])
	case "payments":
		return a.cmdPayments(ctx, args[1:])
	case "admin":
		return a.cmdAdmin(ctx, args[1:])
	}

	return errUsage
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")

	if err := fs.Parse(args); err != nil || *email == "" || *password == "" {
		return errUsage
	}

	user, err := a.stores.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s %s (%s)\n", user.FirstName, user.LastName, user.Role)

	return nil
}

func (a *app) cmdWhoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	offline := fs.Bool("offline", false, "decode cached token instead of calling the backend")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if !a.creds.IsAuthenticated() {
		fmt.Println("not signed in")
		return nil
	}

	// Оффлайн-режим: показываем claims токена без похода на бэкенд.
	// Не авторитетно — только для отображения.
	if *offline {
		pair, _ := a.creds.Pair()

		claims, err := credentials.PeekClaims(pair.Access)
		if err != nil {
			return err
		}

		fmt.Printf("user %s, role %s (from cached token)\n", claims.UserID, claims.Role)

		return nil
	}

	user, err := a.stores.Auth.Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s <%s> role=%s id=%d\n", user.FirstName, user.LastName, user.Email, user.Role, user.ID)

	return nil
}

// cmdDashboard параллельно тянет курсы, лиды и подписку.
func (a *app) cmdDashboard(ctx context.Context) error {
	if err := a.stores.RefreshAll(ctx); err != nil {
		return err
	}

	courses := a.stores.Courses.Items()
	leads := a.stores.Leads.Items()

	fmt.Printf("courses: %d\n", len(courses))
	fmt.Printf("leads:   %d\n", len(leads))

	if sub := a.stores.Subscription.Current(); sub != nil {
		fmt.Printf("plan:    %s (%s until %s)\n", sub.Plan.Name, sub.Status, sub.ExpiresAt.Format("2006-01-02"))
	}

	return nil
}

func (a *app) cmdCourses(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		courses, err := a.stores.Courses.Fetch(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRICE\tPUBLISHED\tSTUDENTS")
		for _, c := range courses {
			fmt.Fprintf(w, "%d\t%s\t%s\t%v\t%d\n", c.ID, c.Title, c.Price, c.IsPublished, c.StudentCount)
		}

		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("courses create", flag.ContinueOnError)
		title := fs.String("title", "", "course title")
		desc := fs.String("description", "", "course description")
		price := fs.String("price", "", "course price")

		if err := fs.Parse(args[1:]); err != nil || *title == "" {
			return errUsage
		}

		in := models.CourseInput{Title: title}
		if *desc != "" {
			in.Description = desc
		}
		if *price != "" {
			in.Price = price
		}

		course, err := a.stores.Courses.Create(ctx, in)
		if err != nil {
			return err
		}

		fmt.Printf("created course %d: %s\n", course.ID, course.Title)

		return nil

	case "publish", "unpublish":
		fs := flag.NewFlagSet("courses publish", flag.ContinueOnError)
		id := fs.Int64("id", 0, "course id")

		if err := fs.Parse(args[1:]); err != nil || *id == 0 {
			return errUsage
		}

		course, err := a.stores.Courses.SetPublished(ctx, *id, args[0] == "publish")
		if err != nil {
			return err
		}

		fmt.Printf("course %d published=%v\n", course.ID, course.IsPublished)

		return nil

	case "delete":
		fs := flag.NewFlagSet("courses delete", flag.ContinueOnError)
		id := fs.Int64("id", 0, "course id")

		if err := fs.Parse(args[1:]); err != nil || *id == 0 {
			return errUsage
		}

		if err := a.stores.Courses.Delete(ctx, *id); err != nil {
			return err
		}

		fmt.Printf("course %d deleted\n", *id)

		return nil
	}

	return errUsage
}

func (a *app) cmdLessons(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return errUsage
	}

	fs := flag.NewFlagSet("lessons list", flag.ContinueOnError)
	courseID := fs.Int64("course", 0, "course id")

	if err := fs.Parse(args[1:]); err != nil || *courseID == 0 {
		return errUsage
	}

	lessons, err := a.stores.Lessons.Fetch(ctx, *courseID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tTITLE\tMATERIALS")
	for _, l := range lessons {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", l.ID, l.Order, l.Title, len(l.Materials))
	}

	return w.Flush()
}

func (a *app) cmdLeads(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("leads list", flag.ContinueOnError)
		status := fs.String("status", "", "filter by status")

		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}

		var (
			leads []models.Lead
			err   error
		)
		if *status != "" {
			leads, err = a.stores.Leads.FetchByStatus(ctx, models.LeadStatus(*status))
		} else {
			leads, err = a.stores.Leads.Fetch(ctx)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tTELEGRAM\tSTATUS")
		for _, l := range leads {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Phone, l.TelegramUsername, l.Status)
		}

		return w.Flush()

	case "set-status":
		fs := flag.NewFlagSet("leads set-status", flag.ContinueOnError)
		id := fs.Int64("id", 0, "lead id")
		status := fs.String("status", "", "new status")
		comment := fs.String("comment", "", "optional comment")

		if err := fs.Parse(args[1:]); err != nil || *id == 0 || *status == "" {
			return errUsage
		}

		lead, err := a.stores.Leads.SetStatus(ctx, *id, models.LeadStatus(*status), *comment)
		if err != nil {
			return err
		}

		fmt.Printf("lead %d -> %s\n", lead.ID, lead.Status)

		return nil
	}

	return errUsage
}

func (a *app) cmdSubscription(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "show":
		sub, err := a.stores.Subscription.FetchCurrent(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("plan %s: %s, %s .. %s\n",
			sub.Plan.Name, sub.Status,
			sub.StartedAt.Format("2006-01-02"), sub.ExpiresAt.Format("2006-01-02"))

		return nil

	case "plans":
		plans, err := a.stores.Subscription.FetchPlans(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tCOURSES\tSTUDENTS")
		for _, p := range plans {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", p.ID, p.Name, p.Price, p.MaxCourses, p.MaxStudents)
		}

		return w.Flush()

	case "usage":
		usage, err := a.stores.Subscription.FetchUsage(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("courses %d, students %d, storage %d MB\n",
			usage.Courses, usage.Students, usage.StorageUsedMB)

		return nil

	case "change":
		fs := flag.NewFlagSet("subscription change", flag.ContinueOnError)
		planID := fs.Int64("plan", 0, "target plan id")

		if err := fs.Parse(args[1:]); err != nil || *planID == 0 {
			return errUsage
		}

		sub, err := a.stores.Subscription.Change(ctx, *planID)
		if err != nil {
			return err
		}

		fmt.Printf("switched to plan %s\n", sub.Plan.Name)

		return nil
	}

	return errUsage
}

func (a *app) cmdPayments(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		payments, err := a.api.AdminPayments(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTEACHER\tAMOUNT\tSTATUS")
		for _, p := range payments {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", p.ID, p.TeacherID, p.Amount, p.Status)
		}

		return w.Flush()

	case "approve":
		fs := flag.NewFlagSet("payments approve", flag.ContinueOnError)
		id := fs.Int64("id", 0, "payment id")

		if err := fs.Parse(args[1:]); err != nil || *id == 0 {
			return errUsage
		}

		payment, err := a.api.ApprovePayment(ctx, *id)
		if err != nil {
			return err
		}

		fmt.Printf("payment %d approved\n", payment.ID)

		return nil

	case "reject":
		fs := flag.NewFlagSet("payments reject", flag.ContinueOnError)
		id := fs.Int64("id", 0, "payment id")
		comment := fs.String("comment", "", "reason shown to the teacher")

		if err := fs.Parse(args[1:]); err != nil || *id == 0 {
			return errUsage
		}

		payment, err := a.api.RejectPayment(ctx, *id, *comment)
		if err != nil {
			return err
		}

		fmt.Printf("payment %d rejected\n", payment.ID)

		return nil
	}

	return errUsage
}

func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "stats":
		stats, err := a.api.AdminStats(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("teachers %d, students %d, courses %d\n", stats.Teachers, stats.Students, stats.Courses)
		fmt.Printf("active subscriptions %d, pending payments %d, revenue %s\n",
			stats.ActiveSubscriptions, stats.PendingPayments, stats.Revenue)

		return nil

	case "teachers":
		teachers, err := a.api.AdminTeachers(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tSCHOOL\tSUBDOMAIN\tPLAN\tSTATUS")
		for _, t := range teachers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Email, t.SchoolName, t.Subdomain, t.PlanSlug, t.Status)
		}

		return w.Flush()

	case "notifications":
		notes, err := a.api.Notifications(ctx)
		if err != nil {
			return err
		}

		for _, n := range notes {
			marker := " "
			if !n.IsRead {
				marker = "*"
			}
			fmt.Printf("%s [%d] %s — %s\n", marker, n.ID, n.Title, n.Body)
		}

		return nil
	}

	return errUsage
}
