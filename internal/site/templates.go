package site

// shellTemplate is the html/template for the viewer page. Content is filled
// in over the websocket session.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/highlight.css">
  <style>` + shellCSS + `</style>
</head>
<body>
  <button class="menu-toggle" id="sidebarToggle" aria-label="Toggle sidebar">&#9776;</button>
  <nav class="sidebar open" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.Title}}</h2>
      <input type="text" id="search-input" placeholder="Search docs..." autocomplete="off">
      <ul class="search-results" id="search-results"></ul>
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.Sidebar}}
    </div>
  </nav>
  <main class="content">
    <article class="page-content" id="markdownContent">
      <div class="loading">Loading documentation...</div>
    </article>
  </main>
  <script>
    window.docviewExpanded = {{.Expanded}};
  </script>
  <script>` + shellJS + `</script>
</body>
</html>`

const shellCSS = `
:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --orange: #e8590c;
  --sidebar-width: 280px;
  --content-max-width: 900px;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; color: var(--text); background: var(--bg); }
.sidebar { position: fixed; top: 0; bottom: 0; left: 0; width: var(--sidebar-width); overflow-y: auto; background: var(--bg-sidebar); border-right: 1px solid var(--border); transform: translateX(-100%); transition: transform .2s; }
.sidebar.open { transform: none; }
.sidebar-header { padding: 16px; }
.sidebar-tree ul { list-style: none; margin: 0; padding-left: 12px; }
.sidebar-tree li.dir > ul { display: none; }
.sidebar-tree li.dir.expanded > ul { display: block; }
.dir-toggle { cursor: pointer; font-weight: 600; display: block; padding: 4px 0; }
.dir-toggle::before { content: "\25B8 "; }
li.dir.expanded > .dir-toggle::before { content: "\25BE "; }
.nav-link { display: block; padding: 3px 6px; color: var(--text); text-decoration: none; border-radius: 4px; }
.nav-link.active { background: var(--accent-light); color: var(--accent); }
.menu-toggle { position: fixed; top: 8px; right: 8px; z-index: 10; }
.content { margin-left: var(--sidebar-width); padding: 24px 40px; }
.page-content { max-width: var(--content-max-width); }
.loading { color: var(--text-muted); }
.error-panel { padding: 40px; text-align: center; }
.error-panel h2 { color: var(--orange); }
.search-results { list-style: none; padding: 0; }
#search-input { width: 100%; padding: 6px; }
@media (max-width: 1023px) { .content { margin-left: 0; } }
`

const shellJS = `
(function () {
  var content = document.getElementById('markdownContent');
  var sidebar = document.getElementById('sidebar');
  var socket;

  function send(msg) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
    }
  }

  function setActive(path) {
    document.querySelectorAll('.nav-link').forEach(function (link) {
      link.classList.toggle('active', link.getAttribute('data-path') === path);
    });
  }

  function setExpanded(sections) {
    var open = {};
    (sections || []).forEach(function (s) { open[s] = true; });
    document.querySelectorAll('li.dir[data-section]').forEach(function (li) {
      li.classList.toggle('expanded', !!open[li.getAttribute('data-section')]);
    });
  }

  function escapeHTML(s) {
    var d = document.createElement('div');
    d.textContent = s;
    return d.innerHTML;
  }

  function showError(panel) {
    content.innerHTML = '<div class="error-panel"><h2>Error Loading Document</h2>' +
      '<p>' + escapeHTML(panel.message) + '</p>' +
      '<p><a href="' + panel.home_href + '">Return to Home</a></p></div>';
  }

  function onMessage(ev) {
    var msg = JSON.parse(ev.data);
    switch (msg.type) {
    case 'session':
      send({ type: 'route', hash: window.location.hash });
      break;
    case 'loading':
      content.innerHTML = '<div class="loading">Loading documentation...</div>';
      break;
    case 'active':
      setActive(msg.path);
      break;
    case 'expanded':
      setExpanded(msg.sections);
      break;
    case 'document':
      content.innerHTML = msg.document.html;
      document.title = msg.document.title;
      window.scrollTo(0, 0);
      break;
    case 'error':
      if (msg.error) { showError(msg.error); }
      break;
    }
  }

  function connect() {
    var proto = window.location.protocol === 'https:' ? 'wss:' : 'ws:';
    socket = new WebSocket(proto + '//' + window.location.host + '/ws');
    socket.onmessage = onMessage;
    socket.onclose = function () { setTimeout(connect, 2000); };
  }

  document.addEventListener('click', function (e) {
    var toggle = e.target.closest('.dir-toggle');
    if (toggle) {
      e.preventDefault();
      send({ type: 'toggle', section: toggle.getAttribute('data-section') });
      return;
    }
    var link = e.target.closest('a[data-nav-path], a.nav-link[data-path]');
    if (link) {
      e.preventDefault();
      send({ type: 'link', path: link.getAttribute('data-nav-path') || link.getAttribute('data-path') });
    }
  });

  window.addEventListener('hashchange', function () {
    send({ type: 'route', hash: window.location.hash });
  });

  document.getElementById('sidebarToggle').addEventListener('click', function () {
    sidebar.classList.toggle('open');
  });

  var index = null;
  var input = document.getElementById('search-input');
  var results = document.getElementById('search-results');
  input.addEventListener('input', function () {
    var q = input.value.trim().toLowerCase();
    var render = function () {
      results.innerHTML = '';
      if (!q) { return; }
      index.filter(function (e) {
        return e.title.toLowerCase().indexOf(q) >= 0 || e.content.toLowerCase().indexOf(q) >= 0;
      }).slice(0, 10).forEach(function (e) {
        var li = document.createElement('li');
        li.innerHTML = '<a class="nav-link" href="' + e.href + '" data-path="' + escapeHTML(e.path) + '">' + escapeHTML(e.title) + '</a>';
        results.appendChild(li);
      });
    };
    if (index) { render(); return; }
    fetch('/search-index.json').then(function (r) { return r.json(); }).then(function (data) {
      index = data;
      render();
    });
  });

  setExpanded(window.docviewExpanded);
  connect();
})();
`
