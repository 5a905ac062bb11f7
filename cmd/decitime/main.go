// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command decitime works with decimal solar calendars: it derives leap
// cycles from orbital periods, converts between dates and absolute day
// numbers, renders decimal time of day and maps calendar years onto the
// Gregorian calendar.
package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/decitime/planet"
)

var cmdSet *subcmd.CommandSet

// ProfileFlags selects the planet profile that commands operate on.
type ProfileFlags struct {
	Profile     string `subcmd:"profile,Earth,planet profile name"`
	ProfileFile string `subcmd:"profile-file,,'yaml file of additional planet profiles'"`
}

func profileFromFlags(fl ProfileFlags) (planet.Profile, error) {
	profiles := planet.Builtin()
	if len(fl.ProfileFile) > 0 {
		loaded, err := planet.LoadFile(fl.ProfileFile)
		if err != nil {
			return planet.Profile{}, err
		}
		profiles = append(loaded, profiles...)
	}
	p, ok := profiles.Lookup(fl.Profile)
	if !ok {
		return planet.Profile{}, fmt.Errorf("no such planet profile: %v", fl.Profile)
	}
	return p, nil
}

func init() {
	cycleFlagSet := subcmd.NewFlagSet()
	cycleFlagSet.MustRegisterFlagStruct(&cycleFlags{}, nil, nil)
	toDayFlagSet := subcmd.NewFlagSet()
	toDayFlagSet.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	toDateFlagSet := subcmd.NewFlagSet()
	toDateFlagSet.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	demoFlagSet := subcmd.NewFlagSet()
	demoFlagSet.MustRegisterFlagStruct(&demoFlags{}, nil, nil)
	nowFlagSet := subcmd.NewFlagSet()
	nowFlagSet.MustRegisterFlagStruct(&nowFlags{}, nil, nil)
	mapFlagSet := subcmd.NewFlagSet()
	mapFlagSet.MustRegisterFlagStruct(&mapFlags{}, nil, nil)
	unitsFlagSet := subcmd.NewFlagSet()
	unitsFlagSet.MustRegisterFlagStruct(&unitsFlags{}, nil, nil)

	cycleCmd := subcmd.NewCommand("cycle", cycleFlagSet, cycle, subcmd.WithoutArguments())
	cycleCmd.Document("derive the leap cycle for an orbital period")

	toDayCmd := subcmd.NewCommand("date-to-day", toDayFlagSet, dateToDay)
	toDayCmd.Document("convert dates to absolute day numbers", "<year-dayofyear>+")

	toDateCmd := subcmd.NewCommand("day-to-date", toDateFlagSet, dayToDate)
	toDateCmd.Document("convert absolute day numbers to dates", "<day>+")

	demoCmd := subcmd.NewCommand("demo", demoFlagSet, demo, subcmd.WithoutArguments())
	demoCmd.Document("show the current decimal date and time alongside the Gregorian calendar")

	nowCmd := subcmd.NewCommand("now", nowFlagSet, now, subcmd.WithoutArguments())
	nowCmd.Document("print the current decimal time, optionally updating continuously")

	mapCmd := subcmd.NewCommand("map", mapFlagSet, mapYear, subcmd.WithoutArguments())
	mapCmd.Document("write a csv mapping a Gregorian year onto the decimal calendar")

	unitsCmd := subcmd.NewCommand("units", unitsFlagSet, unitsTable, subcmd.WithoutArguments())
	unitsCmd.Document("show the sub-day decimal units and their lengths in seconds")

	cmdSet = subcmd.NewCommandSet(cycleCmd, toDayCmd, toDateCmd, demoCmd, nowCmd, mapCmd, unitsCmd)
	cmdSet.Document(`work with decimal solar calendars.

A decimal solar calendar divides a planet's year into 10 months and its
day into decimal sub-units. The leap year pattern is derived from the
planet's orbital period as the best rational approximation to its
fractional part, so the calendar stays aligned with the seasons without
hand-tuned leap rules.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
