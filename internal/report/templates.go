package report

// htmlTemplate is the page rendered by the html generator.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f8fafc;
            --bg-card: #ffffff;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --text-muted: #94a3b8;
            --border-color: #e2e8f0;
            --accent-success: #22c55e;
            --accent-error: #ef4444;
            --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
        }

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            line-height: 1.6;
        }

        .container { max-width: 1200px; margin: 0 auto; padding: 2rem; }

        .header, .section {
            background: var(--bg-card);
            border-radius: 12px;
            padding: 1.5rem;
            margin-bottom: 2rem;
            box-shadow: var(--shadow);
        }

        .header h1 { font-size: 1.75rem; font-weight: 700; }
        .meta { display: flex; gap: 2rem; margin-top: 0.75rem; font-size: 0.875rem; color: var(--text-muted); }

        .status { display: inline-block; padding: 0.5rem 1rem; border-radius: 8px; font-weight: 600; margin-top: 1rem; }
        .status.pass { background-color: rgba(34, 197, 94, 0.1); color: var(--accent-success); }
        .status.fail { background-color: rgba(239, 68, 68, 0.1); color: var(--accent-error); }

        .section-title { font-size: 1.25rem; font-weight: 600; margin-bottom: 1rem; }
        .subject { margin-bottom: 1.5rem; }
        .subject h3 { font-size: 1rem; font-weight: 600; }
        .subject .description { color: var(--text-secondary); font-size: 0.875rem; }
        .error { color: var(--accent-error); font-family: monospace; font-size: 0.875rem; margin: 0.5rem 0; }

        table { width: 100%; border-collapse: collapse; margin-top: 0.75rem; font-size: 0.875rem; }
        th, td { padding: 0.5rem 0.75rem; border-bottom: 1px solid var(--border-color); text-align: left; }
        th { color: var(--text-secondary); font-weight: 600; text-transform: uppercase; font-size: 0.75rem; }
        td.num { text-align: right; font-variant-numeric: tabular-nums; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h1>{{.Title}}</h1>
        <div class="meta">
            <span>Started {{.Doc.Suite.StartTime.Format "2006-01-02 15:04:05"}}</span>
            <span>Duration {{formatNs .Doc.Suite.DurationNs}}</span>
            <span>{{.Doc.Suite.Counts.Subjects}} subjects</span>
            <span>{{.Doc.Suite.Counts.Iterations}} iterations</span>
        </div>
        {{if eq .Doc.Suite.Counts.Failures 0}}
        <div class="status pass">✓ PASSED</div>
        {{else}}
        <div class="status fail">✗ {{.Doc.Suite.Counts.Failures}} FAILURES</div>
        {{end}}
    </div>

    {{range .Doc.Cases}}
    <div class="section">
        <div class="section-title">{{.Name}}</div>
        {{range .Subjects}}
        <div class="subject">
            <h3>{{.Name}}</h3>
            {{if .Description}}<div class="description">{{.Description}}</div>{{end}}
            {{if .Error}}
            <div class="error">{{.Error}}</div>
            {{else}}
            <table>
                <thead>
                    <tr>
                        <th>Parameters</th>
                        <th>Iterations</th>
                        <th>Mean</th>
                        <th>Min</th>
                        <th>Max</th>
                        <th>StdDev</th>
                        <th>P95</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Groups}}
                    <tr>
                        <td>{{paramString .Parameters}}</td>
                        <td class="num">{{.Stats.Count}}</td>
                        <td class="num">{{formatNs .Stats.MeanNs}}</td>
                        <td class="num">{{formatNs .Stats.MinNs}}</td>
                        <td class="num">{{formatNs .Stats.MaxNs}}</td>
                        <td class="num">{{formatNs .Stats.StdDevNs}}</td>
                        <td class="num">{{formatNs .Stats.P95Ns}}</td>
                    </tr>
                    {{if .Error}}<tr><td colspan="7" class="error">{{.Error}}</td></tr>{{end}}
                    {{end}}
                </tbody>
            </table>
            {{end}}
        </div>
        {{end}}
    </div>
    {{end}}
</div>
</body>
</html>
`
