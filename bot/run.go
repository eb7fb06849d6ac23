package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"greenfield-bot/commands"
	"greenfield-bot/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	appID := b.Config.AppID
	if appID == "" {
		appID = b.Session.State.User.ID
	}

	cmds := commands.Generate()
	log.Printf("Registering %d global commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(appID, "", cmds)
	if err != nil {
		log.Printf("Cannot register commands: %v", err)
	} else {
		b.RegisteredCommands = registered
	}

	b.scheduler.Start()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	if b.Config.LogWebhookURL != "" {
		if err := utils.LogInfo(b.Config.LogWebhookURL, "System", "Startup", "Bot has started successfully."); err != nil {
			log.Printf("Failed to send startup log: %v", err)
		}
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
