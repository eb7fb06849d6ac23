package bot

import (
	"time"

	"greenfield-bot/model"
	"greenfield-bot/moderation"
	"greenfield-bot/presence"
	"greenfield-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	DB                 *sqlx.DB
	Engine             *moderation.Engine
	Coordinator        *moderation.Coordinator
	Tracker            *presence.Tracker
	RegisteredCommands []*discordgo.ApplicationCommand
	scheduler          *Scheduler
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates

	var notifier moderation.Notifier
	if cfg.BanSyncWebhookURL != "" {
		notifier = &utils.BanSyncNotifier{WebhookURL: cfg.BanSyncWebhookURL}
	}

	b := &Bot{
		Session: dg,
		Config:  cfg,
		DB:      db,
		Engine: moderation.NewEngine(db,
			time.Duration(cfg.Settings.WarnWindowDays)*24*time.Hour,
			cfg.Settings.MaxWarns),
		Tracker: presence.NewTracker(db),
	}
	b.Coordinator = moderation.NewCoordinator(db, &sessionGuilds{session: dg}, notifier)
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) Close() {
	b.scheduler.Stop()
	b.Session.Close()
}

// sessionGuilds projects the discordgo session onto the coordinator's
// guild surface.
type sessionGuilds struct {
	session *discordgo.Session
}

func (g *sessionGuilds) GuildIDs() []string {
	guilds := g.session.State.Guilds
	ids := make([]string, 0, len(guilds))
	for _, guild := range guilds {
		ids = append(ids, guild.ID)
	}
	return ids
}

func (g *sessionGuilds) Ban(guildID, userID, reason string) error {
	return g.session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (g *sessionGuilds) Unban(guildID, userID string) error {
	return g.session.GuildBanDelete(guildID, userID)
}
