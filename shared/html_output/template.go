package htmloutput

// htmlTemplate is the embedded HTML template for the run report
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>mylib-demo run {{.RunUUID}}</title>
    <style>
        :root {
            --bg-primary: #0d1117;
            --bg-secondary: #161b22;
            --text-primary: #f0f6fc;
            --text-secondary: #8b949e;
            --border-color: #30363d;
            --failed: #f85149;
            --skipped: #d29922;
            --ok: #3fb950;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            line-height: 1.6;
            padding: 20px;
        }
        .container { max-width: 1200px; margin: 0 auto; }
        .meta { color: var(--text-secondary); margin-bottom: 16px; }
        .summary { display: flex; gap: 16px; margin-bottom: 24px; }
        .card {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 12px 20px;
        }
        .card .value { font-size: 1.8em; font-weight: 600; }
        .section {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            margin-bottom: 16px;
            padding: 16px;
        }
        .section-status { display: inline-block; width: 10px; height: 10px; border-radius: 50%; }
        .section-status.good { background: var(--ok); }
        .section-status.failed { background: var(--failed); }
        .section-status.disabled { background: var(--text-secondary); }
        table { width: 100%; border-collapse: collapse; margin-top: 8px; }
        th, td { border-bottom: 1px solid var(--border-color); padding: 6px 8px; text-align: left; }
        .status-ok { color: var(--ok); }
        .status-failed { color: var(--failed); }
        .status-skipped { color: var(--skipped); }
        .artifact { font-family: monospace; color: var(--text-secondary); }
    </style>
</head>
<body>
    <div class="container">
        <h1>External Libraries Usage Examples</h1>
        <p class="meta">Run: <strong>{{.RunUUID}}</strong> | mylib {{.LibVersion}} | mylib-demo {{.Version}} | Generated: {{.GeneratedAt}} | Duration: {{.Duration}}</p>

        <div class="summary">
            <div class="card"><div>Steps</div><div class="value">{{.Summary.TotalSteps}}</div></div>
            <div class="card"><div>OK</div><div class="value status-ok">{{.Summary.OKCount}}</div></div>
            <div class="card"><div>Failed</div><div class="value status-failed">{{.Summary.FailedCount}}</div></div>
            <div class="card"><div>Skipped</div><div class="value status-skipped">{{.Summary.SkippedCount}}</div></div>
            <div class="card"><div>Success</div><div class="value">{{.Summary.SuccessRate}}%</div></div>
        </div>

        {{range .Sections}}
        <div class="section" id="{{.ID}}">
            <h2><span class="section-status {{.Status}}"></span> {{.Title}}</h2>
            {{if .Message}}<p class="meta">{{.Message}}</p>{{end}}
            {{if .Steps}}
            <table>
                <thead><tr><th>Status</th><th>Step</th><th>Detail</th><th>Artifact</th><th>Time</th></tr></thead>
                <tbody>
                {{range .Steps}}
                    <tr>
                        <td class="status-{{.Status | lower}}">{{.Status}}</td>
                        <td>{{.Name}}</td>
                        <td>{{.Detail}}</td>
                        <td class="artifact">{{.Artifact}}</td>
                        <td>{{.Duration}}</td>
                    </tr>
                {{end}}
                </tbody>
            </table>
            {{end}}
        </div>
        {{end}}
    </div>
</body>
</html>
`
