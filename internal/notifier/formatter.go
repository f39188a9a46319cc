package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"BreakoutSentinel/internal/model"
)

// breakoutTag renders the classification with its marker emoji.
func breakoutTag(t model.BreakoutType) string {
	if t == model.AllTimeHigh {
		return "ATH 🏆"
	}
	return "52WH 📈"
}

// displaySymbol strips the exchange suffix for presentation.
func displaySymbol(symbol string) string {
	return strings.TrimSuffix(symbol, ".NS")
}

// SortSignals orders signals by volume ratio descending. The sort is stable
// so ties keep their scan order.
func SortSignals(signals []model.Signal) {
	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].VolRatio > signals[j].VolRatio
	})
}

// FormatScanReport renders the scan result as a Telegram HTML message.
// Signals are listed by volume ratio descending.
func FormatScanReport(scanDate time.Time, signals []model.Signal) string {
	dateStr := scanDate.Format("02 Jan 2006")

	if len(signals) == 0 {
		return fmt.Sprintf(
			"📊 <b>NSE Breakout Scanner — %s</b>\n\n"+
				"No stocks found today.\n\n"+
				"<i>Conditions checked:\n"+
				"• High above 52-Week High\n"+
				"• Green candle (close &gt; open)\n"+
				"• Price above 21 EMA</i>",
			dateStr)
	}

	sorted := make([]model.Signal, len(signals))
	copy(sorted, signals)
	SortSignals(sorted)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚀 <b>NSE Breakout Scanner — %s</b>\n\n", dateStr))
	b.WriteString(fmt.Sprintf("<b>%d stock(s) found:</b>\n\n", len(sorted)))
	for _, s := range sorted {
		b.WriteString("──────────────────\n")
		b.WriteString(fmt.Sprintf("📌 <b>%s</b>  %s\n", displaySymbol(s.Symbol), breakoutTag(s.BreakoutType)))
		b.WriteString(fmt.Sprintf("   Close    : ₹%.2f\n", s.Close))
		b.WriteString(fmt.Sprintf("   52W High : ₹%.2f\n", s.Week52High))
		b.WriteString(fmt.Sprintf("   Volume   : %.2fx avg\n", s.VolRatio))
		b.WriteString(fmt.Sprintf("   21 EMA   : ₹%.2f\n", s.EMA21))
		b.WriteString(fmt.Sprintf("   SL       : ₹%.2f (-%.2f%%)\n", s.SLPrice, s.SLPct))
		b.WriteString(fmt.Sprintf("   Target   : ₹%.2f (+%.2f%%)\n\n", s.TargetPrice, s.TargetPct))
	}
	b.WriteString("──────────────────\n")
	b.WriteString("\n⚠️ <i>Check chart before entry.\nEnter next day only if price holds above breakout level.</i>")
	return b.String()
}
