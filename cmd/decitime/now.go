// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"cloudeng.io/decitime/clock"
)

type nowFlags struct {
	ProfileFlags
	Format   string `subcmd:"format,%Y-%j %A AC,'output format; directives: %Y year; %j day of year; %A day fraction; %M %K %C composite units; %p percent of day'"`
	Watch    bool   `subcmd:"watch,false,update continuously until interrupted"`
	Interval string `subcmd:"interval,1s,update interval when watching"`
}

func now(ctx context.Context, values interface{}, _ []string) error {
	fl := values.(*nowFlags)
	p, err := profileFromFlags(fl.ProfileFlags)
	if err != nil {
		return err
	}
	conv, err := clock.NewConverter(p)
	if err != nil {
		return err
	}
	line := func() string {
		return clock.Format(fl.Format, conv.Calendar(), conv.Now())
	}
	if !fl.Watch {
		fmt.Println(line())
		return nil
	}
	interval, err := time.ParseDuration(fl.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		// Rewrite the current line in place.
		fmt.Printf("\r\033[K%s", line())
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
		}
	}
}
