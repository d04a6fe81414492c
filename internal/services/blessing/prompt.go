package blessing

import (
	"fmt"
	"strings"

	"github.com/jaiidees/riser-gacha/internal/model"
)

const promptTemplateTH = `Role: คุณคือตัวแทนจาก "โปรเจกต์แฟนคลับ (@Jaiidees)" ที่ทำกิจกรรมแจกของที่ระลึกด้วยใจรัก
Tone: อบอุ่น, ละมุน, เป็นกันเอง (เหมือนเพื่อนคุยกับเพื่อน), น่ารัก, ให้เกียรติ แต่ไม่ทางการ (Not Official)
Language: ภาษาไทยที่อ่านแล้วยิ้มตาม (ความยาว 3-4 บรรทัด)
Input: เพื่อนแฟนคลับชื่อ "%s" เมนฝั่ง "%s"
Task: เขียนข้อความขอบคุณที่มาร่วมสนุกกับโปรเจกต์แฟนคลับ: 1.ทักทาย 2.ความเชื่อมโยงที่รักศิลปินเหมือนกัน 3.อวยพรให้ใจฟูและเดินทางปลอดภัย 4.ปิดท้าย Quote ภาษาอังกฤษสั้นๆ`

const promptTemplateEN = `Role: You are a representative from the "Fan Project (@Jaiidees)", created with love by fans for fans.
Tone: Warm, soft, friendly (Fan-to-Fan connection), sweet, and not corporate/official.
Language: Heartwarming English (Length: 3-4 sentences).
Input: Fellow fan named "%s" supporting the "%s" side.
Task: Write a thank you note for joining our fan project gacha. Express joy in sharing the same love for the artist. Wish them joy and safe travels. End with a short English Quote.`

// BuildPrompt renders the tone-constrained prompt for a visitor
func BuildPrompt(name string, side model.Side, lang model.Language) string {
	template := promptTemplateTH
	if lang == model.LanguageEnglish {
		template = promptTemplateEN
	}
	return fmt.Sprintf(template, name, strings.ToUpper(string(side)))
}
