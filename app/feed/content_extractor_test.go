package feed

import (
	"strings"
	"testing"
)

func TestContentExtractorValidHTML(t *testing.T) {
	extractor := NewContentExtractor()

	htmlContent := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Quarterly Earnings Recap</title>
	</head>
	<body>
		<header>
			<h1>Site Header</h1>
			<nav>Navigation</nav>
		</header>
		<main>
			<article>
				<h1>Quarterly Earnings Recap</h1>
				<p>Revenue climbed across most sectors this quarter, with technology and energy leading the gains. Analysts had expected a far more modest showing given the rate environment.</p>
				<p>Guidance for the next quarter remains cautious. Several companies flagged currency headwinds and slowing consumer demand as reasons to keep forecasts conservative.</p>
				<p>Bond markets barely reacted to the reports, suggesting investors had already priced in the bulk of the earnings surprises well before the announcements landed.</p>
			</article>
		</main>
		<aside>
			<div>Advertisement</div>
			<div>Related Links</div>
		</aside>
		<footer>
			<p>Copyright 2025</p>
		</footer>
	</body>
	</html>
	`

	result, err := extractor.Run([]byte(htmlContent), "")

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	if result == "" {
		t.Errorf("Expected non-empty result")
	}

	if !strings.Contains(result, "Revenue climbed across most sectors") {
		t.Errorf("Expected extracted content to contain main article text")
	}

	if strings.Contains(result, "Advertisement") {
		t.Errorf("Expected extracted content to exclude advertisement")
	}

	if strings.Contains(result, "Copyright 2025") {
		t.Errorf("Expected extracted content to exclude footer")
	}
}

func TestContentExtractorPageURL(t *testing.T) {
	extractor := NewContentExtractor()

	htmlContent := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Rate Decision Coverage</title>
	</head>
	<body>
		<article>
			<h1>Rate Decision Coverage</h1>
			<p>The central bank held rates steady for the third consecutive meeting, citing persistent but slowing inflation. Officials signalled that any future moves would depend on incoming labor data.</p>
			<p>Markets took the statement in stride. Read the <a href="/markets/full-report">full report</a> for a sector-by-sector breakdown of the immediate reaction across equities and fixed income.</p>
			<p>Economists remain split on the timing of the first cut, with projections ranging from two meetings out to well into next year depending on how quickly shelter costs cool.</p>
		</article>
	</body>
	</html>
	`

	result, err := extractor.Run([]byte(htmlContent), "https://news.example.com/story/rate-decision")

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	if !strings.Contains(result, "held rates steady") {
		t.Errorf("Expected extracted content to contain article text")
	}

	if !strings.Contains(result, "markets/full-report") {
		t.Errorf("Expected extracted content to keep the report link")
	}
}

func TestContentExtractorEmptyData(t *testing.T) {
	extractor := NewContentExtractor()

	result, err := extractor.Run([]byte{}, "")

	if err == nil {
		t.Errorf("Expected error for empty data")
	}

	if result != "" {
		t.Errorf("Expected empty result for empty data")
	}

	expectedError := "HTML data is empty"
	if err.Error() != expectedError {
		t.Errorf("Expected error message '%s', got '%s'", expectedError, err.Error())
	}
}

func TestContentExtractorNilData(t *testing.T) {
	extractor := NewContentExtractor()

	result, err := extractor.Run(nil, "")

	if err == nil {
		t.Errorf("Expected error for nil data")
	}

	if result != "" {
		t.Errorf("Expected empty result for nil data")
	}
}

func TestContentExtractorMinimalHTML(t *testing.T) {
	extractor := NewContentExtractor()

	// Might fail the character threshold or succeed with the minimal
	// content, both are acceptable.
	result, err := extractor.Run([]byte(`<html><body><p>Short text</p></body></html>`), "")

	if err != nil {
		if result != "" {
			t.Errorf("Expected empty result when extraction fails")
		}
	} else {
		if !strings.Contains(result, "Short text") {
			t.Errorf("Expected extracted content to contain the text")
		}
	}
}

func TestContentExtractorScriptRemoval(t *testing.T) {
	extractor := NewContentExtractor()

	htmlContent := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Commodities Wrap</title>
	</head>
	<body>
		<script>
			console.log("tracking");
			var trackingCode = "analytics";
		</script>
		<article>
			<h1>Commodities Wrap</h1>
			<p>Crude futures settled higher after inventory data showed a larger than expected draw, while refined products lagged on weak seasonal demand from the transport sector.</p>
			<p>Gold extended its advance as real yields drifted lower. Traders attributed the move to steady central bank buying rather than any shift in the inflation outlook.</p>
			<p>Agricultural markets were mixed. Wheat slipped on improving harvest projections while coffee rallied for the fourth straight session on supply concerns out of key growing regions.</p>
		</article>
	</body>
	</html>
	`

	result, err := extractor.Run([]byte(htmlContent), "")

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	if !strings.Contains(result, "Crude futures settled higher") {
		t.Errorf("Expected extracted content to contain main article text")
	}

	if strings.Contains(result, "trackingCode") {
		t.Errorf("Expected extracted content to exclude script content")
	}
}
