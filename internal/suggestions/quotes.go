package suggestions

import (
	"math/rand"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

var quotes = []types.Quote{
	{Text: "You don't have to control your thoughts. You just have to stop letting them control you.", Author: "Dan Millman"},
	{Text: "Mental health problems don't define who you are. They are something you experience.", Author: "Roy T. Bennett"},
	{Text: "There is hope, even when your brain tells you there isn't.", Author: "John Green"},
	{Text: "Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.", Author: "Anonymous"},
	{Text: "Happiness can be found even in the darkest of times, if one only remembers to turn on the light.", Author: "J.K. Rowling"},
	{Text: "You are not alone. You are seen. Your struggles are valid, and you are worthy of help.", Author: "Anonymous"},
	{Text: "Self-care is how you take your power back.", Author: "Lalah Delia"},
	{Text: "Recovery is not one and done. It is a lifelong journey that takes place one day, one step at a time.", Author: "Anonymous"},
	{Text: "Be patient with yourself. Self-growth is tender; it's holy ground. There's no greater investment.", Author: "Stephen Covey"},
	{Text: "The way you speak to yourself matters. The way you treat yourself sets the standard for others.", Author: "Anonymous"},
	{Text: "You don't have to be positive all the time. It's perfectly okay to feel sad, angry, annoyed, frustrated, scared, or anxious.", Author: "Lori Deschene"},
	{Text: "Your present circumstances don't determine where you can go; they merely determine where you start.", Author: "Nido Qubein"},
	{Text: "Sometimes the bravest and most important thing you can do is just show up.", Author: "Brené Brown"},
	{Text: "Take a deep breath. It's just a bad day, not a bad life.", Author: "Anonymous"},
	{Text: "Owning our story and loving ourselves through that process is the bravest thing we'll ever do.", Author: "Brené Brown"},
}

// RandomQuote returns one motivational quote.
func RandomQuote() types.Quote {
	return quotes[rand.Intn(len(quotes))]
}
