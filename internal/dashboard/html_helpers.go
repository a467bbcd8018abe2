package dashboard

import (
	"fmt"
	"html/template"
)

const appTitle = "GitHub Profile Detective"

// htmlHead returns the common HTML head section with proper meta tags.
func htmlHead(title, description string) template.HTML {
	if description == "" {
		description = "Look up any GitHub account and see its public profile at a glance"
	}

	return template.HTML(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover">
	<meta name="description" content="%s">

	<!-- Open Graph / Social Media -->
	<meta property="og:type" content="website">
	<meta property="og:title" content="%s">
	<meta property="og:description" content="%s">

	<!-- Favicon -->
	<link rel="icon" type="image/svg+xml" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='0.9em' font-size='90'>🕵️</text></svg>">

	<title>%s</title>
	%s
</head>`,
		template.HTMLEscapeString(description),
		template.HTMLEscapeString(title),
		template.HTMLEscapeString(description),
		template.HTMLEscapeString(title),
		commonCSS()))
}

// commonCSS returns the shared CSS styles.
func commonCSS() string {
	return `<style>
		/* CSS Variables for theming */
		:root {
			--bg-primary: #f5f5f5;
			--bg-secondary: white;
			--text-primary: #333;
			--text-secondary: #666;
			--link-color: #0066cc;
			--button-bg: #0066cc;
			--button-hover: #0052a3;
			--border-color: #e0e0e0;
			--shadow: rgba(0,0,0,0.1);
			--failed-bg: #f8d7da;
			--failed-text: #721c24;
		}
		[data-theme="dark"] {
			--bg-primary: #1a1a1a;
			--bg-secondary: #2d2d2d;
			--text-primary: #e0e0e0;
			--text-secondary: #b0b0b0;
			--link-color: #4d9fff;
			--button-bg: #4d9fff;
			--button-hover: #3d8fef;
			--border-color: #404040;
			--shadow: rgba(0,0,0,0.3);
			--failed-bg: #5a1e24;
			--failed-text: #f8d7da;
		}
		body { font-family: system-ui, -apple-system, sans-serif; margin: 0; padding: 20px; background: var(--bg-primary); color: var(--text-primary); transition: background-color 0.3s, color 0.3s; }
		.container { max-width: 640px; margin: 0 auto; }
		.title { text-align: center; }
		.search-box { display: flex; gap: 8px; margin-bottom: 16px; }
		.search-input { flex: 1; padding: 10px 12px; border: 1px solid var(--border-color); border-radius: 6px; background: var(--bg-secondary); color: var(--text-primary); font-size: 16px; }
		.search-button { padding: 10px 20px; border: none; border-radius: 6px; background: var(--button-bg); color: white; cursor: pointer; font-size: 16px; }
		.search-button:hover { background: var(--button-hover); }
		.search-button:disabled { opacity: 0.6; cursor: default; }
		.message { color: var(--text-secondary); text-align: center; }
		.message.error { background: var(--failed-bg); color: var(--failed-text); padding: 10px; border-radius: 6px; }
		.profile-card { background: var(--bg-secondary); padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px var(--shadow); }
		.profile-header { display: flex; align-items: center; gap: 16px; }
		.avatar { width: 80px; height: 80px; border-radius: 50%; }
		.info { flex: 1; }
		.profile-name { margin: 0; }
		.profile-login { margin: 4px 0 0; color: var(--link-color); }
		.joined-date { color: var(--text-secondary); font-size: 14px; }
		.stats-box { display: flex; justify-content: space-around; margin: 20px 0; padding: 12px; border-radius: 8px; background: var(--bg-primary); }
		.stat-item { display: flex; flex-direction: column; align-items: center; }
		.stat-label { font-size: 13px; color: var(--text-secondary); }
		.stat-value { font-size: 20px; font-weight: bold; }
		.links-section { display: grid; grid-template-columns: 1fr 1fr; gap: 10px; }
		.link-item { color: var(--text-secondary); overflow: hidden; text-overflow: ellipsis; }
		.view-profile-button { display: block; margin-top: 20px; padding: 10px; text-align: center; border-radius: 6px; background: var(--button-bg); color: white; text-decoration: none; }
		.view-profile-button:hover { background: var(--button-hover); }
		.theme-toggle { background: var(--bg-secondary); border: 1px solid var(--border-color); padding: 8px 16px; border-radius: 4px; cursor: pointer; font-size: 14px; color: var(--text-primary); }
	</style>`
}

// themeScript restores the saved theme and wires the toggle button.
const themeScript = `<script>
		function toggleTheme() {
			const html = document.documentElement;
			const newTheme = html.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
			html.setAttribute('data-theme', newTheme);
			localStorage.setItem('theme', newTheme);
			updateToggleButton(newTheme);
		}
		function updateToggleButton(theme) {
			const btn = document.querySelector('.theme-toggle');
			btn.textContent = theme === 'dark' ? '☀️ Light Mode' : '🌙 Dark Mode';
		}
		(function() {
			const savedTheme = localStorage.getItem('theme') || 'light';
			document.documentElement.setAttribute('data-theme', savedTheme);
			updateToggleButton(savedTheme);
		})();
		// Only one lookup at a time: lock the form until the page comes back.
		document.querySelector('.search-box').addEventListener('submit', function() {
			const btn = this.querySelector('.search-button');
			btn.disabled = true;
			btn.textContent = 'Searching...';
			document.getElementById('status-line').innerHTML = '<p class="message">Fetching profile...</p>';
		});
	</script>`
