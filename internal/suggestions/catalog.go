package suggestions

import (
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Static per-platform wellness tip catalogs. Selection draws from these
// without replacement; the conditional extras below are appended to the
// candidate pool before sampling, never returned unconditionally.

var instagramCatalog = []types.Suggestion{
	{Title: "Curate Your Feed", Emoji: "✂️", Description: "Unfollow accounts that make you feel inadequate. Follow those that inspire genuine joy and creativity."},
	{Title: "Set Time Boundaries", Emoji: "⏱️", Description: "Use your phone's screen time feature to limit Instagram to 30 minutes per day."},
	{Title: "Mindful Scrolling", Emoji: "🧘‍♀️", Description: "Before opening Instagram, take three deep breaths and set an intention for what you want to get from the app."},
	{Title: "Reality Check", Emoji: "🔍", Description: "Remember that most Instagram posts show carefully curated highlights, not real everyday life."},
	{Title: "Engagement Detox", Emoji: "❤️", Description: "Try using Instagram without checking your likes or followers count for a week."},
	{Title: "Post Authentically", Emoji: "📸", Description: "Share a completely unfiltered, real moment from your day without worrying about likes."},
	{Title: "Comment Kindness", Emoji: "💬", Description: "Leave three genuine, supportive comments on friends' posts instead of just liking."},
}

var facebookCatalog = []types.Suggestion{
	{Title: "News Feed Cleanse", Emoji: "🧹", Description: "Use 'Take a Break' feature to see less of certain people without unfriending them."},
	{Title: "Groups Focus", Emoji: "👥", Description: "Spend more time in positive, hobby-based groups and less time on the main feed."},
	{Title: "Notification Detox", Emoji: "🔕", Description: "Turn off all non-essential notifications to reduce the urge to constantly check Facebook."},
	{Title: "Memory Lane Limits", Emoji: "🕰️", Description: "If 'On This Day' memories trigger negative emotions, adjust your settings to see fewer of them."},
	{Title: "Active vs. Passive", Emoji: "🏃‍♂️", Description: "Engage actively (posting, commenting) rather than passively scrolling, which research links to better wellbeing."},
	{Title: "Evening Boundary", Emoji: "🌙", Description: "Make your bedroom a Facebook-free zone, especially in the hour before sleep."},
	{Title: "Weekly Digital Sabbath", Emoji: "📵", Description: "Choose one day per week to stay completely off Facebook and focus on in-person connections."},
}

// Appended to the Facebook pool when the user reports anxiety.
var facebookAnxietyExtra = types.Suggestion{
	Title: "Compare Less, Connect More", Emoji: "🤝",
	Description: "When you notice comparison thoughts, message a friend to have a real conversation instead.",
}

var twitterCatalog = []types.Suggestion{
	{Title: "Curate Your Timeline", Emoji: "✂️", Description: "Use mute words for topics that consistently trigger stress or negative emotions."},
	{Title: "Reply Timer", Emoji: "⏲️", Description: "Wait 5 minutes before responding to content that provokes a strong emotional reaction."},
	{Title: "Follow Diversity", Emoji: "🌈", Description: "Ensure your feed includes diverse perspectives to avoid echo chamber effects."},
	{Title: "Trending Topics Break", Emoji: "🛑", Description: "Avoid the Trending tab when you're already feeling stressed or anxious."},
	{Title: "Three-Tweet Rule", Emoji: "3️⃣", Description: "If you've opened Twitter three times in an hour, take a 30-minute break."},
	{Title: "Discussion Boundaries", Emoji: "🚧", Description: "It's okay to disengage from debates that become unproductive or hostile."},
	{Title: "Positive Contribution", Emoji: "✨", Description: "Share one positive or uplifting tweet for every critical one you post."},
}

var youtubeCatalog = []types.Suggestion{
	{Title: "Watch Intentionally", Emoji: "🎯", Description: "Search for specific videos rather than endlessly scrolling the recommended feed."},
	{Title: "Comment Mindfully", Emoji: "💬", Description: "Before posting a comment, ask yourself: Is it kind? Is it necessary? Is it helpful?"},
	{Title: "Clear Watch History", Emoji: "🧹", Description: "Periodically clear your watch history to reset the algorithm and get fresh recommendations."},
	{Title: "Set Time Limits", Emoji: "⏱️", Description: "Use YouTube's built-in reminders to take breaks after a set time period."},
	{Title: "Schedule Viewing", Emoji: "📅", Description: "Designate specific times for YouTube rather than using it as a default time-filler."},
	{Title: "Growth-Focused Content", Emoji: "🌱", Description: "Subscribe to channels that teach skills or knowledge relevant to your goals."},
	{Title: "Disable Autoplay", Emoji: "⏹️", Description: "Turn off autoplay to make conscious choices about what you watch next."},
}

// Appended to the YouTube pool when reported sleep quality is poor.
var youtubeSleepExtra = types.Suggestion{
	Title: "Evening Screen Break", Emoji: "🌙",
	Description: "Avoid YouTube at least one hour before bedtime to improve sleep quality.",
}

var snapchatCatalog = []types.Suggestion{
	{Title: "Streak Freedom", Emoji: "🔥", Description: "Remember that streaks don't define friendships. It's okay if they break sometimes."},
	{Title: "Authentic Sharing", Emoji: "🤗", Description: "Share real moments instead of only curated ones. Authenticity strengthens connections."},
	{Title: "Story Boundaries", Emoji: "🛑", Description: "You don't need to watch everyone's stories every day. Be selective with your attention."},
	{Title: "FOMO Fighter", Emoji: "💪", Description: "When feeling left out, message a friend to arrange a real hangout instead of just watching."},
	{Title: "Snap Map Privacy", Emoji: "🗺️", Description: "Use Ghost Mode when needed - it's okay not to share your location all the time."},
	{Title: "Notification Pause", Emoji: "🔕", Description: "Turn off Snapchat notifications during study time, work, or when you need to focus."},
	{Title: "Content Intention", Emoji: "🧭", Description: "Before opening Snapchat, set an intention: 'I'm checking in with specific friends' rather than mindless browsing."},
}

var generalCatalog = []types.Suggestion{
	{Title: "Digital Detox Time", Emoji: "⏳", Description: "Set aside 30 minutes each day to completely disconnect from digital devices."},
	{Title: "Morning Mindfulness", Emoji: "🌅", Description: "Wait 30 minutes after waking up before checking any social media apps."},
	{Title: "Nature Connection", Emoji: "🌳", Description: "When feeling overwhelmed by screen time, take a 10-minute walk outside without your phone."},
	{Title: "Bedtime Boundary", Emoji: "🛏️", Description: "Create a charging station outside your bedroom to avoid nighttime scrolling."},
	{Title: "Mindful Notifications", Emoji: "🔔", Description: "Turn off all non-essential app notifications to reduce digital distraction."},
	{Title: "Comparison Awareness", Emoji: "👁️", Description: "When you notice comparison thoughts, remind yourself you're seeing others' highlights, not their reality."},
	{Title: "Digital Sabbath", Emoji: "📵", Description: "Choose one day per month for a complete digital detox - no social media or unnecessary screen time."},
	{Title: "Focus Blocks", Emoji: "🧱", Description: "Use the Pomodoro technique: 25 minutes of focused work followed by 5 minutes of break time."},
}

// FallbackSuggestions are served when the AI path is unavailable or returns
// an unusable payload.
var FallbackSuggestions = []types.Suggestion{
	{Title: "Take Regular Breaks", Emoji: "⏳", Description: "Try a 10-minute offline break every 2 hours to refresh your mind."},
	{Title: "Practice Mindfulness", Emoji: "🧘‍♀️", Description: "Take 5 minutes to focus on your breathing whenever you feel overwhelmed."},
	{Title: "Curate Your Feed", Emoji: "👀", Description: "Unfollow accounts that trigger negative emotions or comparison."},
}

// CatalogFor returns the static catalog backing a platform. Unknown
// platforms get the general catalog.
func CatalogFor(platform types.Platform) []types.Suggestion {
	switch platform {
	case types.PlatformInstagram:
		return instagramCatalog
	case types.PlatformFacebook:
		return facebookCatalog
	case types.PlatformTwitter:
		return twitterCatalog
	case types.PlatformYouTube:
		return youtubeCatalog
	case types.PlatformSnapchat:
		return snapchatCatalog
	default:
		return generalCatalog
	}
}
