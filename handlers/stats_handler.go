package handlers

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"greenfield-bot/bot"
	"greenfield-bot/utils/database"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HandleStatsCommand shows project statistics plus a host system block.
func HandleStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	now := time.Now()

	banCount, err := database.CountGlobalBans(b.DB)
	if err != nil {
		log.Printf("Failed to count global bans: %v", err)
	}
	warnCount, err := database.CountActiveWarnsGlobal(b.DB, now.Unix())
	if err != nil {
		log.Printf("Failed to count active warns: %v", err)
	}
	assignCount, err := database.CountAssignments(b.DB)
	if err != nil {
		log.Printf("Failed to count assignments: %v", err)
	}
	totalSeconds, err := database.TotalGuildSeconds(b.DB, i.GuildID)
	if err != nil {
		log.Printf("Failed to sum online time: %v", err)
	}

	// Members currently connected to a voice channel in this guild.
	voiceOnline := 0
	if guild, err := s.State.Guild(i.GuildID); err == nil {
		voiceOnline = len(guild.VoiceStates)
	}

	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	embed := &discordgo.MessageEmbed{
		Title:     "📊 Greenfield Project Statistics",
		Color:     0x3498db,
		Timestamp: now.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🌍 Servers", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
			{Name: "🚫 Global bans", Value: fmt.Sprintf("%d", banCount), Inline: true},
			{Name: "⚠️ Active warnings", Value: fmt.Sprintf("%d", warnCount), Inline: true},
			{Name: "✅ Assignments", Value: fmt.Sprintf("%d", assignCount), Inline: true},
			{Name: "🔊 In voice now", Value: fmt.Sprintf("%d", voiceOnline), Inline: true},
			{Name: "⏳ Total voice time", Value: fmt.Sprintf("%d h", totalSeconds/3600), Inline: true},
			{Name: "💻 OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "🐹 Go version", Value: runtime.Version(), Inline: true},
			{Name: "🔼 CPUs", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU usage", Value: fmt.Sprintf("%.1f%%", cpuUsage), Inline: true},
			{Name: "🧠 Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Updated just now"},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("Failed to respond with stats: %v", err)
	}
}
