// Package typing は入力された綴りと正解の単語を比較します。
package typing

// Status は単語または文字ごとの判定結果
type Status string

const (
	StatusPending   Status = "pending"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
)

// CharResult は正解単語の1文字分の判定
type CharResult struct {
	Char   string
	Status Status
}

// CompareWord は単語全体を判定します。未入力は pending。
func CompareWord(target, typed string) Status {
	switch {
	case typed == "":
		return StatusPending
	case typed == target:
		return StatusCorrect
	default:
		return StatusIncorrect
	}
}

// CompareChars は正解単語の各文字について判定を返します。
// 正解より長い入力の余分な文字は無視します。
func CompareChars(target, typed string) []CharResult {
	want := []rune(target)
	got := []rune(typed)

	results := make([]CharResult, 0, len(want))
	for i, r := range want {
		st := StatusPending
		if i < len(got) {
			if got[i] == r {
				st = StatusCorrect
			} else {
				st = StatusIncorrect
			}
		}
		results = append(results, CharResult{Char: string(r), Status: st})
	}
	return results
}
