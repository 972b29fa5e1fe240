package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-backend/internal/app"
	"github.com/lumenlearn/lumen-backend/internal/scheduler"
)

func main() {
	var userFlag, goalFlag, modeFlag string
	var size int
	flag.StringVar(&userFlag, "user", "", "user id")
	flag.StringVar(&goalFlag, "goal", "", "goal id")
	flag.StringVar(&modeFlag, "mode", "mixed", "session mode: revision|mixed")
	flag.IntVar(&size, "size", 10, "requested session size")
	flag.Parse()

	userID, err := uuid.Parse(strings.TrimSpace(userFlag))
	if err != nil {
		fmt.Println("invalid -user id")
		os.Exit(1)
	}
	goalID, err := uuid.Parse(strings.TrimSpace(goalFlag))
	if err != nil {
		fmt.Println("invalid -goal id")
		os.Exit(1)
	}

	var mode scheduler.SessionMode
	switch strings.ToLower(strings.TrimSpace(modeFlag)) {
	case "revision":
		mode = scheduler.ModeRevision
	case "mixed", "mixed_learning":
		mode = scheduler.ModeMixedLearning
	default:
		fmt.Println("invalid -mode, want revision or mixed")
		os.Exit(1)
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx := context.Background()
	itemIDs, err := application.Services.Session.Generate(ctx, userID, goalID, size, mode)
	if err != nil {
		fmt.Printf("generate session: %v\n", err)
		os.Exit(1)
	}

	if len(itemIDs) == 0 {
		fmt.Println("no session: goal has no eligible candidates")
		return
	}
	for i, id := range itemIDs {
		fmt.Printf("%2d  %s\n", i+1, id)
	}
}
