package blessing

import "github.com/jaiidees/riser-gacha/internal/model"

// Curated fallback messages, one pool per language. Served whenever the
// generative provider is unconfigured, slow, or failing, so a visitor can
// never tell an outage from a lucky draw.

var fallbackPoolTH = []string{
	"ขอบคุณที่มาร่วมสนุกกับโปรเจกต์เล็กๆ ของเรานะ! ดีใจที่ได้เจอกันในงาน Riser Concert ขอให้วันนี้เป็นวันที่ใจฟู ได้โมเมนต์กลับไปเยอะๆ และเดินทางกลับบ้านปลอดภัยนะ\n\n\"Music is the strongest form of magic.\"",
	"ฮัลโหลลล! ขอบคุณที่แวะมาเล่นกิจกรรม Fan Project นะคะ ดีใจมากที่เราชอบศิลปินคนเดียวกัน ขอให้วันนี้มีความสุขสุดๆ เก็บความทรงจำดีๆ กลับไปให้เต็มกระเป๋าเลย!\n\n\"Where words fail, music speaks.\"",
	"ยินดีต้อนรับสู่โปรเจกต์แฟนคลับของเราครับ! ดีใจที่ได้เป็นส่วนหนึ่งในวันสำคัญนี้ ขอให้สนุกกับคอนเสิร์ต ร้องเพลงให้สุดเสียง และกลับบ้านอย่างมีความสุขนะครับ\n\n\"Happiness is seeing your favorite artist live.\"",
	"ขอบคุณที่มาร่วมเป็นส่วนหนึ่งของความทรงจำนี้นะ! หวังว่าของขวัญเล็กๆ นี้จะทำให้เธอยิ้มได้ ขอให้วันนี้เป็นวันที่สดใสและเต็มไปด้วยพลังบวกนะ เดินทางปลอดภัยจ้า\n\n\"Life is short, buy the concert tickets.\"",
	"งู้ยยย ขอบคุณที่มาเล่นด้วยกันน้า! ดีใจที่ได้เจอคนรักศิลปินเหมือนกัน ขอให้วันนี้ได้รับพลังงานดีๆ กลับไปเต็มเปี่ยม ดูแลสุขภาพและเดินทางกลับดีๆ นะคะ\n\n\"Music binds our souls, hearts, and emotions.\"",
}

var fallbackPoolEN = []string{
	"Thanks for stopping by our Fan Project gacha! So happy we share the same love for the artist at Riser Concert. Hope your heart is full of joy today. Safe travels home!\n\n\"Music is the strongest form of magic.\"",
	"Hello fellow fan! Thank you for joining our small project. Wishing you the best moments and a wonderful time at the concert. Have a safe trip back!\n\n\"Where words fail, music speaks.\"",
	"Welcome to our Fan Project! It's amazing to see you here. Hope this little gift brings a smile to your face. Enjoy the music and have a safe journey!\n\n\"Happiness is seeing your favorite artist live.\"",
	"So glad you are here! Thank you for supporting our project. May your day be filled with happiness and great memories. Take care and stay safe!\n\n\"Life is short, buy the concert tickets.\"",
	"Thank you for being part of this memory! Sending you lots of love and positive energy. Hope you have an incredible time today. Safe travels!\n\n\"Music binds our souls, hearts, and emotions.\"",
}

// FallbackPool returns the curated pool for a language
func FallbackPool(lang model.Language) []string {
	if lang == model.LanguageEnglish {
		return fallbackPoolEN
	}
	return fallbackPoolTH
}
