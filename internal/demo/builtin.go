package demo

import "time"

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Builtin returns the built-in demo catalog. The scripts replay the Smart
// File Organizer CLI's real output: the banner, per-file move lines,
// dry-run previews, duplicate skips, and the dimmed log hint footer.
func Builtin() *Catalog {
	c, err := NewCatalog(heroDemo(), basicDemo(), dryrunDemo(), duplicatesDemo())
	if err != nil {
		// The built-in scripts are constants; a failure here is a bug.
		panic(err)
	}
	return c
}

// heroDemo is the landing terminal: a typed command followed by a full run.
func heroDemo() Demo {
	return Demo{
		Name: "hero",
		Lines: []Line{
			{Text: "$ smart-organizer ~/Downloads", Color: TagWhite, Delay: ms(0)},
			{Text: "═══════════════════════════════════════", Color: TagCyan, Delay: ms(1600)},
			{Text: "      Smart File Organizer  v1.1", Color: TagCyan, Delay: ms(1700)},
			{Text: "═══════════════════════════════════════", Color: TagCyan, Delay: ms(1800)},
			{Text: "📁 Target: ~/Downloads", Color: TagWhite, Delay: ms(2000)},
			{Text: "Found 6 file(s)", Color: TagWhite, Delay: ms(2300)},
			{Text: "  ✓ photo.jpg → Images/photo.jpg", Color: TagGreen, Delay: ms(2600)},
			{Text: "  ✓ resume.pdf → Documents/resume.pdf", Color: TagGreen, Delay: ms(2800)},
			{Text: "  ✓ song.mp3 → Music/song.mp3", Color: TagGreen, Delay: ms(3000)},
			{Text: "  ✓ clip.mp4 → Videos/clip.mp4", Color: TagGreen, Delay: ms(3200)},
			{Text: "  ✓ backup.zip → Archives/backup.zip", Color: TagGreen, Delay: ms(3400)},
			{Text: "  ✓ notes.txt → Documents/notes.txt", Color: TagGreen, Delay: ms(3600)},
			{Text: "✓ Organized 6 file(s)", Color: TagGreen, Delay: ms(3900)},
			{Text: "   See organizer_log.txt for details.", Color: TagDimGray, Delay: ms(4100)},
		},
	}
}

// basicDemo shows eight files being sorted. The move lines carry strictly
// increasing delays from 0 to 1700; the typed command shares offset 0 and
// precedes them in enqueue order.
func basicDemo() Demo {
	return Demo{
		Name: "basic",
		Lines: []Line{
			{Text: "$ smart-organizer", Color: TagWhite, Delay: ms(0)},
			{Text: "  → photo.jpg → Images/photo.jpg", Color: TagCyan, Delay: ms(0)},
			{Text: "  → report.docx → Documents/report.docx", Color: TagCyan, Delay: ms(250)},
			{Text: "  → track01.flac → Music/track01.flac", Color: TagCyan, Delay: ms(500)},
			{Text: "  → holiday.mp4 → Videos/holiday.mp4", Color: TagCyan, Delay: ms(750)},
			{Text: "  → archive.tar.gz → Archives/archive.tar.gz", Color: TagCyan, Delay: ms(1000)},
			{Text: "  → scan.pdf → Documents/scan.pdf", Color: TagCyan, Delay: ms(1200)},
			{Text: "  → wallpaper.png → Images/wallpaper.png", Color: TagCyan, Delay: ms(1450)},
			{Text: "  → podcast.mp3 → Music/podcast.mp3", Color: TagCyan, Delay: ms(1700)},
			{Text: "✓ Organized 8 file(s)", Color: TagGreen, Delay: ms(1900)},
			{Text: "   See organizer_log.txt for details.", Color: TagDimGray, Delay: ms(2100)},
		},
	}
}

// dryrunDemo shows preview mode: nothing moves, moves are printed as arrows.
func dryrunDemo() Demo {
	return Demo{
		Name: "dryrun",
		Lines: []Line{
			{Text: "$ smart-organizer --dry-run", Color: TagWhite, Delay: ms(0)},
			{Text: "📋 PREVIEW MODE — no files will be moved", Color: TagYellow, Delay: ms(1500)},
			{Text: "   Remove --dry-run to organize for real.", Color: TagYellow, Delay: ms(1650)},
			{Text: "  → photo.jpg → Images/photo.jpg", Color: TagCyan, Delay: ms(1900)},
			{Text: "  → report.docx → Documents/report.docx", Color: TagCyan, Delay: ms(2100)},
			{Text: "  → track01.flac → Music/track01.flac", Color: TagCyan, Delay: ms(2300)},
			{Text: "✓ Preview complete: 3 file(s) would be moved", Color: TagGreen, Delay: ms(2600)},
			{Text: "   Run again without --dry-run to apply changes.", Color: TagYellow, Delay: ms(2800)},
		},
	}
}

// duplicatesDemo shows duplicate detection skipping files.
func duplicatesDemo() Demo {
	return Demo{
		Name: "duplicates",
		Lines: []Line{
			{Text: "$ smart-organizer --find-duplicates", Color: TagWhite, Delay: ms(0)},
			{Text: "Found 5 file(s)", Color: TagWhite, Delay: ms(1500)},
			{Text: "  ✓ invoice.pdf → Documents/invoice.pdf", Color: TagGreen, Delay: ms(1700)},
			{Text: "⚠ SKIP: invoice (1).pdf (duplicate of invoice.pdf)", Color: TagYellow, Delay: ms(1900)},
			{Text: "  ✓ photo.jpg → Images/photo.jpg", Color: TagGreen, Delay: ms(2100)},
			{Text: "⚠ SKIP: photo copy.jpg (duplicate of photo.jpg)", Color: TagYellow, Delay: ms(2300)},
			{Text: "✓ Organized 3 file(s)", Color: TagGreen, Delay: ms(2600)},
			{Text: "   2 duplicate(s) skipped", Color: TagYellow, Delay: ms(2750)},
			{Text: "   See organizer_log.txt for details.", Color: TagDimGray, Delay: ms(2950)},
		},
	}
}
