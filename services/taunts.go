package services

import (
	"fmt"
	"math/rand"
	"strings"
)

// Taunt templates shown when the rival makes progress. Written to be
// competitive, mean, and emotion-jerking. {rival} is the name of whoever
// made the move; ${amount} is the wager at stake.

var GymTaunts = []string{
	"💪 {rival} just crushed the gym. What's your excuse?",
	"While you're on your phone, {rival} is getting gains 🏋️",
	"{rival} hit the gym. You? Still 'planning to go tomorrow'",
	"🔥 {rival} checked off gym. Your ${amount} is slipping away...",
	"Guess who just worked out? Not you. But {rival} did 💀",
	"{rival} is outworking you RIGHT NOW. Feel that?",
	"Another gym session for {rival}. Another L for you 📉",
	"{rival} grinding while you're scrolling. Classic.",
	"🚨 {rival} completed their workout. You're falling behind!",
	"{rival} just put in the work. You putting in excuses?",
	"Tick tock... {rival} is at the gym. Where are you?",
	"{rival} is one step closer to YOUR ${amount} 💸",
}

var CalorieTaunts = []string{
	"🔥 {rival} hit their calorie goal. You eating dirt or what?",
	"{rival} is dialed in on nutrition. You still 'winging it'?",
	"Calorie goal: CRUSHED by {rival}. Yours? Cricket sounds 🦗",
	"{rival} tracked their cals like a winner. Be like {rival}.",
	"💪 {rival} met their nutrition goals. Feeling nervous yet?",
	"While you're guessing, {rival} is KNOWING. Calories logged!",
	"{rival} just locked in their macros. Your ${amount} thanks them 😤",
	"Another day, another calorie goal hit by {rival}. You? 👀",
	"🍽️ {rival} crushed calories today. Step it up or step aside.",
	"{rival} is eating for results. You're eating for... fun?",
	"Discipline. That's what {rival} has. Calories: DONE ✅",
	"{rival} nailed nutrition. Your bet's looking shakier by the day 📉",
}

var WeightTaunts = []string{
	"📊 {rival} just logged their weight. Are you even tracking?",
	"{rival} knows their numbers. Do you know yours? 🤔",
	"Progress check: {rival} is tracking. You're... hoping?",
	"{rival} stepped on the scale. Accountability hits different.",
	"⚖️ {rival} logged weight. That's what winners do.",
	"{rival} is monitoring progress. You winging it still?",
	"Data > feelings. {rival} knows this. Weight logged!",
	"{rival} tracking their journey. You just along for the ride?",
}

var GenericTaunts = []string{
	"🚨 ALERT: {rival} is getting ahead of you!",
	"Say goodbye to your ${amount}... {rival} is WINNING",
	"{rival} making moves while you're making excuses 💀",
	"Your ${amount} is looking real comfy in {rival}'s pocket rn",
	"⚠️ {rival} just logged progress. You're getting left behind!",
	"Looks like you're gonna lose ${amount}... {rival} is on fire 🔥",
	"{rival} is putting in WORK. Your money's at stake!",
	"Another point for {rival}. That ${amount} getting nervous?",
	"🏃 {rival} making progress. You standing still.",
	"{rival} is winning. Just thought you should know 😈",
	"That ${amount} bet? {rival} wants it BAD.",
	"While you sleep, {rival} executes. Check the scoreboard 📊",
}

var tauntTitles = map[string]string{
	"gym":      "🏋️ Rival Alert!",
	"calories": "🔥 Rival Alert!",
	"weight":   "⚖️ Rival Tracking!",
	"generic":  "⚠️ You're Falling Behind!",
}

// FormatTaunt substitutes every {rival} and ${amount} occurrence.
func FormatTaunt(template, rivalName string, betAmount int) string {
	out := strings.ReplaceAll(template, "{rival}", rivalName)
	return strings.ReplaceAll(out, "${amount}", fmt.Sprintf("$%d", betAmount))
}

// TauntTemplates returns the template set for a category. Unknown
// categories fall back to the generic set.
func TauntTemplates(category string) []string {
	switch category {
	case "gym":
		return GymTaunts
	case "calories":
		return CalorieTaunts
	case "weight":
		return WeightTaunts
	default:
		return GenericTaunts
	}
}

// RandomTaunt picks a template uniformly at random from the category's set
// and fills it in.
func RandomTaunt(category, rivalName string, betAmount int) string {
	templates := TauntTemplates(category)
	return FormatTaunt(templates[rand.Intn(len(templates))], rivalName, betAmount)
}

// TauntTitle is the notification title for a category.
func TauntTitle(category string) string {
	if t, ok := tauntTitles[category]; ok {
		return t
	}
	return "⚠️ Rival Alert!"
}
