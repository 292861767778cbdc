package server

import "net/http"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

// indexPage is the single-page leg editor. Legs live in the table; every
// edit re-posts the full leg list and swaps in the freshly rendered SVG,
// so the chart is always a pure function of the visible inputs.
const indexPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Payoff Studio</title>
    <style>
        body { font-family: sans-serif; margin: 24px; max-width: 720px; }
        table { border-collapse: collapse; margin-top: 10px; }
        th, td { border: 1px solid #aaa; padding: 5px; text-align: center; }
        input { width: 80px; }
        #chart { margin-top: 16px; }
        #error { color: #dc2626; }
    </style>
</head>
<body>
    <h2>Option Strategy Payoff</h2>
    <div>
        <input id="symbol" value="SPY" size="6">
        <button onclick="loadQuote()">Load quote</button>
        <span id="spot"></span>
        <span id="error"></span>
    </div>
    <button onclick="addRow()">Add leg</button>
    <table id="legTable">
        <thead>
            <tr>
                <th>Side</th><th>Type</th><th>Qty</th><th>Strike</th><th>Expiry</th><th></th>
            </tr>
        </thead>
        <tbody></tbody>
    </table>
    <div id="chart"></div>
    <pre id="analysis"></pre>

<script>
let spotPrice = null;
let expirations = [];

function addRow() {
    const tbody = document.querySelector("#legTable tbody");
    const row = document.createElement("tr");
    const expOpts = expirations.map(e => '<option>' + e + '</option>').join('');
    row.innerHTML =
        '<td><select onchange="refresh()"><option>LONG</option><option>SHORT</option></select></td>' +
        '<td><select onchange="refresh()"><option>CALL</option><option>PUT</option></select></td>' +
        '<td><input type="number" value="1" step="1" onchange="refresh()"></td>' +
        '<td><input type="number" value="' + (spotPrice ? Math.round(spotPrice) : 100) + '" step="1" onchange="refresh()"></td>' +
        '<td><select onchange="refresh()">' + (expOpts || '<option></option>') + '</select></td>' +
        '<td><button onclick="this.closest(\'tr\').remove(); refresh()">x</button></td>';
    tbody.appendChild(row);
    refresh();
}

function collectLegs() {
    const legs = [];
    document.querySelectorAll("#legTable tbody tr").forEach(row => {
        const f = row.querySelectorAll("input, select");
        const quantity = parseFloat(f[2].value);
        const strike = parseFloat(f[3].value);
        legs.push({
            side: f[0].value,
            type: f[1].value,
            quantity: isFinite(quantity) ? quantity : 0,
            strike: isFinite(strike) ? strike : 0,
            expiry: f[4].value
        });
    });
    return legs;
}

async function refresh() {
    const body = JSON.stringify({legs: collectLegs(), spot: spotPrice});
    const svgResp = await fetch("/api/chart.svg", {method: "POST",
        headers: {"Content-Type": "application/json"}, body});
    if (svgResp.ok) {
        document.getElementById("chart").innerHTML = await svgResp.text();
    }
    const resp = await fetch("/api/payoff", {method: "POST",
        headers: {"Content-Type": "application/json"}, body});
    if (resp.ok) {
        const data = await resp.json();
        document.getElementById("analysis").textContent =
            "Breakevens: " + data.analysis.breakevens.map(b => b.toFixed(2)).join(", ") +
            "\nMax profit (window): " + data.analysis.maxProfit.toFixed(2) +
            "\nMax loss (window): " + data.analysis.maxLoss.toFixed(2);
    }
}

async function loadQuote() {
    const symbol = document.getElementById("symbol").value.trim().toUpperCase();
    const errEl = document.getElementById("error");
    errEl.textContent = "";
    try {
        const resp = await fetch("/api/quote?symbol=" + encodeURIComponent(symbol));
        const data = await resp.json();
        if (!resp.ok) {
            errEl.textContent = data.error || "quote lookup failed";
            return;
        }
        spotPrice = data.price;
        document.getElementById("spot").textContent = "Spot: " + data.price.toFixed(2);
        const expResp = await fetch("/api/expirations?symbol=" + encodeURIComponent(symbol));
        if (expResp.ok) {
            expirations = (await expResp.json()).expirations || [];
        }
        refresh();
    } catch (e) {
        errEl.textContent = "quote lookup failed";
    }
}

addRow();
</script>
</body>
</html>
`
