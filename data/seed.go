// Package data holds the demo fixtures the service ships with while
// there is no real backend behind it.
package data

import (
	"time"

	"civicreport-be/models"
	"civicreport-be/store"
)

// Departments returns the city's department roster.
func Departments() []models.Department {
	return []models.Department{
		{ID: "dept_1", Name: "Sanitation"},
		{ID: "dept_2", Name: "Public Works"},
		{ID: "dept_3", Name: "Electricity"},
		{ID: "dept_4", Name: "Water and Drainage"},
		{ID: "dept_5", Name: "Parks & Recreation"},
	}
}

func coord(v float64) *float64 { return &v }

// SeedDemo loads a demo citizen, a demo admin, and a handful of issues
// in assorted lifecycle states. Timestamps are backdated through the
// store clock so dashboards have something to show on first boot.
func SeedDemo(issues *store.IssueStore, users *store.UserStore) error {
	citizen, err := users.Create("Alex Johnson", "alex@citizen.gov", "password123", models.RoleCitizen)
	if err != nil {
		return err
	}
	if _, err := users.Create("Sarah Admin", "admin@cityhall.gov", "admin123", models.RoleAdmin); err != nil {
		return err
	}

	base := time.Now()
	at := func(hoursAgo int) {
		t := base.Add(-time.Duration(hoursAgo) * time.Hour)
		issues.SetClock(func() time.Time { return t })
	}
	defer issues.SetClock(time.Now)

	at(2)
	pothole, err := issues.Create(store.CreatePayload{
		Title:       "Pothole on 5th Ave",
		Description: "Large pothole causing traffic hazard near the intersection",
		Category:    models.Pothole,
		Priority:    models.High,
		Location:    models.Location{Lat: coord(40.7128), Lng: coord(-74.006), Address: "5th Ave & Main St"},
		ReportedBy:  citizen.ID,
	})
	if err != nil {
		return err
	}
	if _, err := issues.Assign(pothole.ID, "dept_2"); err != nil {
		return err
	}
	if _, err := issues.SetStatus(pothole.ID, models.InProgress, ""); err != nil {
		return err
	}
	at(1)
	if _, err := issues.AppendUpdate(pothole.ID, "The crew has arrived and repair work is scheduled to finish by 4 PM today.", "Public Works Department"); err != nil {
		return err
	}

	at(24)
	graffiti, err := issues.Create(store.CreatePayload{
		Title:       "Graffiti in Central Park",
		Description: "Vandalism on the north fountain area walls",
		Category:    models.Graffiti,
		Priority:    models.Medium,
		Location:    models.Location{Lat: coord(40.7829), Lng: coord(-73.9654), Address: "Central Park North Fountain"},
		ReportedBy:  citizen.ID,
	})
	if err != nil {
		return err
	}
	if _, err := issues.Assign(graffiti.ID, "dept_5"); err != nil {
		return err
	}
	at(12)
	if _, err := issues.SetStatus(graffiti.ID, models.Resolved, "Cleaning crew successfully removed the markings from the north fountain area."); err != nil {
		return err
	}

	at(48)
	if _, err := issues.Create(store.CreatePayload{
		Title:       "Street Light Out",
		Description: "Street light not working, creating safety concern at night",
		Category:    models.Streetlight,
		Priority:    models.Medium,
		Location:    models.Location{Lat: coord(40.7489), Lng: coord(-73.968), Address: "Oak & Pine Street"},
		ReportedBy:  citizen.ID,
	}); err != nil {
		return err
	}

	at(3)
	leak, err := issues.Create(store.CreatePayload{
		Title:       "Water Main Leak",
		Description: "Water leaking from underground pipe",
		Category:    models.Water,
		Priority:    models.High,
		Location:    models.Location{Lat: coord(40.7549), Lng: coord(-73.984), Address: "Broadway & 42nd St"},
		ReportedBy:  citizen.ID,
	})
	if err != nil {
		return err
	}
	if _, err := issues.Assign(leak.ID, "dept_4"); err != nil {
		return err
	}
	at(2)
	if _, err := issues.AppendUpdate(leak.ID, "Issue acknowledged. Team dispatched to assess the situation.", "Water and Drainage"); err != nil {
		return err
	}

	return nil
}
